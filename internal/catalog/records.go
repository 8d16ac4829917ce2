package catalog

import (
	"cmp"
	"fmt"
	"strings"
)

// DataType is the storage type of a record field.
type DataType int

const (
	Character DataType = iota
	Code
	Date
	Float
	Money
	Number
	Rate
)

var dataTypeNames = [...]string{
	Character: "Character",
	Code:      "Code",
	Date:      "Date",
	Float:     "Float",
	Money:     "Money",
	Number:    "Number",
	Rate:      "Rate",
}

func (t DataType) String() string {
	if t < 0 || int(t) >= len(dataTypeNames) {
		return fmt.Sprintf("DataType(%d)", int(t))
	}
	return dataTypeNames[t]
}

// Field describes one field of a database record.
type Field struct {
	Number   int
	Mnemonic string
	Title    string
	Type     DataType
	// Length is the maximum character count for Character fields and the
	// largest value for Code fields.
	Length         int
	HelpFile       string
	DefaultControl bool
	DefaultValue   string
	// Description is a one-line summary.
	Description string
	// Notes is the markdown body of the field's help page.
	Notes string
}

// Label is the mnemonic as it is written in source.
func (f Field) Label() string { return strings.ToUpper(f.Mnemonic) }

// Markdown renders the help page for the field.
func (f Field) Markdown() string {
	var b strings.Builder
	fmt.Fprintf(&b, "# %s\n\n", f.Title)
	fmt.Fprintf(&b, "Field Number:     %03d  \n", f.Number)
	fmt.Fprintf(&b, "Mnemonic:         %s  \n", f.Label())
	fmt.Fprintf(&b, "Data Type:        %s  \n", f.typeDetail())
	fmt.Fprintf(&b, "Help File:        %s  \n", f.HelpFile)
	fmt.Fprintf(&b, "Default Control:  %s  \n", yesNo(f.DefaultControl))
	fmt.Fprintf(&b, "Default Value:    %s\n", cmp.Or(f.DefaultValue, "<Blank>"))
	if f.Notes != "" {
		b.WriteString("\n")
		b.WriteString(f.Notes)
		b.WriteString("\n")
	}
	return b.String()
}

func (f Field) typeDetail() string {
	switch {
	case f.Type == Character && f.Length > 0:
		return fmt.Sprintf("%d Characters", f.Length)
	case f.Type == Code && f.Length > 0:
		return fmt.Sprintf("Code to %d", f.Length)
	}
	return f.Type.String()
}

func yesNo(b bool) string {
	if b {
		return "Yes"
	}
	return "No"
}

// Record is a database record type and its fields.
type Record struct {
	Name   string
	Fields []Field
}

// Field returns the field with the given mnemonic, ignoring case.
func (r *Record) Field(mnemonic string) (Field, bool) {
	mnemonic = strings.ToLower(strings.TrimSpace(mnemonic))
	for _, f := range r.Fields {
		if f.Mnemonic == mnemonic {
			return f, true
		}
	}
	return Field{}, false
}

// LookupRecord returns the record named by word. Case is ignored, as is a
// trailing colon, so "ACCOUNT:" finds the account record.
func LookupRecord(word string) (*Record, bool) {
	word = strings.ToLower(strings.TrimSpace(word))
	word = strings.TrimSpace(strings.ReplaceAll(word, ":", ""))
	r, ok := records[word]
	return r, ok
}

var records = map[string]*Record{
	"account": {Name: "account", Fields: accountFields},
}
