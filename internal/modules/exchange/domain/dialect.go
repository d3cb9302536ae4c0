package domain

import "strings"

// Dialect identifies which of the two recognized CSV header layouts a file
// uses. Detection happens once per file, before any data row is read, and
// fixes the column mapping for the whole import.
type Dialect int

const (
	// DialectTemplate is the hand-editable import template: single-letter
	// headers D,S,W,R,P,C,N.
	DialectTemplate Dialect = iota
	// DialectFullExport is the file ExportCSV writes: localized long-form
	// headers including id and timestamps. Only the seven data columns are
	// consumed on import.
	DialectFullExport
)

var templateNames = [7]string{"D", "S", "W", "R", "P", "C", "N"}

// Localized column names of the full-export layout.
const (
	HeaderID        = "ID"
	HeaderDate      = "日期"
	HeaderSleepTime = "入睡时间"
	HeaderWeight    = "体重(kg)"
	HeaderRating    = "评分"
	HeaderSteps     = "步数"
	HeaderCalories  = "卡路里摄入"
	HeaderNote      = "备注"
	HeaderCreatedAt = "创建时间"
	HeaderUpdatedAt = "更新时间"
)

var fullExportNames = [7]string{
	HeaderDate, HeaderSleepTime, HeaderWeight, HeaderRating,
	HeaderSteps, HeaderCalories, HeaderNote,
}

// FullExportHeader is the header row of a full export, in column order.
func FullExportHeader() []string {
	return []string{
		HeaderID, HeaderDate, HeaderSleepTime, HeaderWeight, HeaderRating,
		HeaderSteps, HeaderCalories, HeaderNote, HeaderCreatedAt, HeaderUpdatedAt,
	}
}

// DetectDialect inspects a header row. A D,S,W,R,P,C,N prefix selects the
// template dialect; anything else falls through to the full-export layout.
func DetectDialect(header []string) Dialect {
	if len(header) < len(templateNames) {
		return DialectFullExport
	}
	for i, want := range templateNames {
		if strings.TrimSpace(header[i]) != want {
			return DialectFullExport
		}
	}
	return DialectTemplate
}

// FieldIndex maps the seven data fields to column positions within one
// file; -1 marks a column the file does not carry.
type FieldIndex struct {
	Date      int
	SleepTime int
	Weight    int
	Rating    int
	Steps     int
	Calories  int
	Note      int
}

// Index resolves the column positions for this dialect from the actual
// header row, so reordered or extended files still map correctly.
func (d Dialect) Index(header []string) FieldIndex {
	names := fullExportNames
	if d == DialectTemplate {
		names = templateNames
	}
	index := FieldIndex{Date: -1, SleepTime: -1, Weight: -1, Rating: -1, Steps: -1, Calories: -1, Note: -1}
	for position, cell := range header {
		switch strings.TrimSpace(cell) {
		case names[0]:
			index.Date = position
		case names[1]:
			index.SleepTime = position
		case names[2]:
			index.Weight = position
		case names[3]:
			index.Rating = position
		case names[4]:
			index.Steps = position
		case names[5]:
			index.Calories = position
		case names[6]:
			index.Note = position
		}
	}
	return index
}

// RawRow holds the unparsed cell text of the seven data fields.
type RawRow struct {
	Date      string
	SleepTime string
	Weight    string
	Rating    string
	Steps     string
	Calories  string
	Note      string
}

// Extract pulls the mapped cells out of one CSV record. Missing or
// out-of-range columns read as empty.
func (ix FieldIndex) Extract(record []string) RawRow {
	cell := func(i int) string {
		if i < 0 || i >= len(record) {
			return ""
		}
		return record[i]
	}
	return RawRow{
		Date:      cell(ix.Date),
		SleepTime: cell(ix.SleepTime),
		Weight:    cell(ix.Weight),
		Rating:    cell(ix.Rating),
		Steps:     cell(ix.Steps),
		Calories:  cell(ix.Calories),
		Note:      cell(ix.Note),
	}
}
