package dss

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/arkane-systems/arkane-fileproperties-dss/dss/dheader"
	"github.com/arkane-systems/arkane-fileproperties-dss/dss/lbytes"
	"github.com/iancoleman/orderedmap"
)

// Decode reads the DSS header laid out at the start of bs and labels the
// result with pathName. bs may hold a whole file; only the 1024-byte header
// region is read.
func Decode(bs []byte, pathName string) (*dheader.Header, error) {
	reader := lbytes.NewBytesReader(bs)
	return dheader.Decode(reader, pathName)
}

// FormatLength renders a recording length the way the format stores it:
// hh:mm:ss with hours not wrapped at 24.
func FormatLength(d time.Duration) string {
	hours := d / time.Hour
	minutes := (d % time.Hour) / time.Minute
	seconds := (d % time.Minute) / time.Second
	return fmt.Sprintf("%02d:%02d:%02d", hours, minutes, seconds)
}

// ToLinkedHashMap turns a decoded header into an ordered map so JSON output
// keeps the fields in header-layout order instead of alphabetical.
func ToLinkedHashMap(header dheader.Header) *orderedmap.OrderedMap {
	lhm := orderedmap.New()
	lhm.Set("path_name", header.PathName)
	lhm.Set("created_on", header.CreatedOn.Format(time.RFC3339))
	lhm.Set("completed_on", header.CompletedOn.Format(time.RFC3339))
	lhm.Set("length", FormatLength(header.Length))
	lhm.Set("comments", header.Comments)
	return lhm
}

// DecodeJSON decodes the header at the start of bs and returns it as
// indented JSON with the fields in layout order.
func DecodeJSON(bs []byte, pathName string) ([]byte, error) {
	header, err := Decode(bs, pathName)
	if err != nil {
		return nil, err
	}
	return json.MarshalIndent(ToLinkedHashMap(*header), "", "  ")
}
