package dto

// CourseRecord is the flattened wire representation of one scheduled
// session. Display fields always carry a value (placeholder when the
// source property is missing); nullable fields serialize as null.
type CourseRecord struct {
	Name            string   `json:"name"`
	DateStart       *string  `json:"dateStart"`
	DateEnd         *string  `json:"dateEnd"`
	Teacher         string   `json:"teacher"`
	Room            string   `json:"room"`
	Clazz           string   `json:"clazz"`
	Status          string   `json:"status"`
	DurationMinutes *int     `json:"durationMinutes"`
	AttendanceRate  *float64 `json:"attendanceRate"`
}
