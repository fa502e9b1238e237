package notion

// Property type tags as emitted by the workspace API. The union below
// carries one payload field per tag; readers dispatch on Type and fall
// back to an empty value for unknown tags.
const (
	TypeTitle       = "title"
	TypeRichText    = "rich_text"
	TypeSelect      = "select"
	TypeMultiSelect = "multi_select"
	TypeDate        = "date"
	TypePeople      = "people"
	TypeRelation    = "relation"
	TypeNumber      = "number"
	TypeRollup      = "rollup"
	TypeFormula     = "formula"
	TypeStatus      = "status"
)

// RichText is a single fragment of formatted text.
type RichText struct {
	PlainText string `json:"plain_text"`
}

// SelectOption names one select/multi-select/status choice.
type SelectOption struct {
	Name string `json:"name"`
}

// DateRange is the raw date payload: ISO datetimes or date-only strings.
type DateRange struct {
	Start *string `json:"start"`
	End   *string `json:"end"`
}

// Person references a workspace user attached to a people property.
type Person struct {
	ID string `json:"id"`
}

// Relation references a page linked through a relation property.
type Relation struct {
	ID string `json:"id"`
}

// Rollup carries the numeric slice of a rollup payload.
type Rollup struct {
	Number *float64 `json:"number"`
}

// Formula carries the numeric slice of a formula payload.
type Formula struct {
	Number *float64 `json:"number"`
}

// Property is the tagged union of upstream property payloads.
type Property struct {
	Type        string         `json:"type"`
	Title       []RichText     `json:"title,omitempty"`
	RichText    []RichText     `json:"rich_text,omitempty"`
	Select      *SelectOption  `json:"select,omitempty"`
	MultiSelect []SelectOption `json:"multi_select,omitempty"`
	Date        *DateRange     `json:"date,omitempty"`
	People      []Person       `json:"people,omitempty"`
	Relation    []Relation     `json:"relation,omitempty"`
	Number      *float64       `json:"number,omitempty"`
	Rollup      *Rollup        `json:"rollup,omitempty"`
	Formula     *Formula       `json:"formula,omitempty"`
	Status      *SelectOption  `json:"status,omitempty"`
}

// Page is one row of the queried database.
type Page struct {
	ID         string              `json:"id"`
	Properties map[string]Property `json:"properties"`
}

type sortSpec struct {
	Property  string `json:"property"`
	Direction string `json:"direction"`
}

type queryRequest struct {
	PageSize int        `json:"page_size"`
	Sorts    []sortSpec `json:"sorts"`
}

type queryResponse struct {
	Results []Page `json:"results"`
}
