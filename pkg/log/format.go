package log

import "fmt"

// Absent is how a nil optional field value is printed.
const Absent = "absent"

// FormatValue prints a single decoded field value, nil as Absent.
func FormatValue(v any) string {
	if v == nil {
		return Absent
	}
	return fmt.Sprint(v)
}
