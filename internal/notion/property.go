package notion

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

var percentPattern = regexp.MustCompile(`([0-9]+(?:\.[0-9]+)?)%`)

// Text flattens a text-like property to a display string. People and
// relation lists collapse to a count label; unknown tags yield "".
func (p Property) Text() string {
	switch p.Type {
	case TypeTitle:
		return joinPlainText(p.Title)
	case TypeRichText:
		return joinPlainText(p.RichText)
	case TypeSelect:
		if p.Select != nil {
			return p.Select.Name
		}
		return ""
	case TypeMultiSelect:
		names := make([]string, 0, len(p.MultiSelect))
		for _, opt := range p.MultiSelect {
			if opt.Name != "" {
				names = append(names, opt.Name)
			}
		}
		return strings.Join(names, "、")
	case TypePeople:
		if len(p.People) > 0 {
			return fmt.Sprintf("%d位老师", len(p.People))
		}
		return ""
	case TypeRelation:
		if len(p.Relation) > 0 {
			return fmt.Sprintf("%d个班级", len(p.Relation))
		}
		return ""
	default:
		return ""
	}
}

// NumberLike extracts a numeric value from number, rollup and formula
// payloads, and from rich text carrying a percentage such as "85.5%".
// Absent or unparseable values yield nil.
func (p Property) NumberLike() *float64 {
	switch p.Type {
	case TypeNumber:
		return p.Number
	case TypeRollup:
		if p.Rollup != nil {
			return p.Rollup.Number
		}
		return nil
	case TypeFormula:
		if p.Formula != nil {
			return p.Formula.Number
		}
		return nil
	case TypeRichText:
		txt := joinPlainText(p.RichText)
		if txt == "" {
			return nil
		}
		if m := percentPattern.FindStringSubmatch(txt); m != nil {
			if n, err := strconv.ParseFloat(m[1], 64); err == nil {
				return &n
			}
		}
		if n, err := strconv.ParseFloat(strings.TrimSpace(txt), 64); err == nil {
			return &n
		}
		return nil
	default:
		return nil
	}
}

// DateValue returns the raw date range, or an empty range for non-date tags.
func (p Property) DateValue() DateRange {
	if p.Type == TypeDate && p.Date != nil {
		return *p.Date
	}
	return DateRange{}
}

// StatusName returns the status label, or "" for non-status tags.
func (p Property) StatusName() string {
	if p.Type == TypeStatus && p.Status != nil {
		return p.Status.Name
	}
	return ""
}

func joinPlainText(parts []RichText) string {
	var b strings.Builder
	for _, part := range parts {
		b.WriteString(part.PlainText)
	}
	return b.String()
}
