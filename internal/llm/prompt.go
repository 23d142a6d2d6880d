package llm

import "strings"

// RecognitionPrompt composes the fixed instruction sent with every batch. It
// fully specifies the target schema's field semantics: sentinel rules, ROC to
// Gregorian date conversion, and 24-hour time formatting. The forms carry
// Traditional Chinese handwriting with some printed cells.
func RecognitionPrompt() string {
	parts := []string{
		"You are an expert reader of Traditional Chinese handwritten and printed text.",
		"Examine the scanned overtime form image(s) and extract EVERY overtime record row from the table.",
		"One image may contain multiple rows; each row is one independent record. Do not skip any row.",
		"Return ONLY JSON that matches the provided JSON Schema.",
		"",
		"For each record, extract:",
		"1. employee_name: the handwritten signature in the sign-in/sign-out column.",
		"2. date: the handwritten date, formatted YYYY-MM-DD. If the year is a Republic of China (Minguo) year, convert it to the Gregorian calendar by adding 1911 (e.g. 114 becomes 2025).",
		"3. overtime_start_time: the start cell of the overtime-time column, formatted HH:MM in 24-hour time (e.g. 08:00).",
		"4. overtime_end_time: the end cell of the overtime-time column, formatted HH:MM in 24-hour time (e.g. 09:00).",
		"5. overtime_reason: the complete text of the overtime-reason cell for that row. This cell is usually printed rather than handwritten; read everything in it, including parenthesized notes. Never read the adjacent column of reasons that cannot be filed online.",
		"6. overtime_type: the compensation category, e.g. overtime pay or compensatory leave. When the form lists several categories with an hours cell each, the category whose hours cell is non-zero is the one that applies.",
		"7. hours: the numeric hour count for the record (e.g. 1.0 for one hour).",
		"",
		"If a textual field cannot be recognized, fill in exactly \"unrecognized\".",
		"If hours cannot be recognized, fill in 0.0.",
		"Every field must be present for every record; never omit a field and never output null.",
	}
	return strings.Join(parts, "\n")
}
