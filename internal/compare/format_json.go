package compare

import (
	"encoding/json"
)

// JSONFormatter formats the contribution-impact comparison as JSON
type JSONFormatter struct {
	Pretty bool // If true, format with indentation
}

// Format generates JSON output for the comparison
func (jf *JSONFormatter) Format(impact *ImpactSet) (string, error) {
	var data []byte
	var err error

	if jf.Pretty {
		data, err = json.MarshalIndent(impact, "", "  ")
	} else {
		data, err = json.Marshal(impact)
	}

	if err != nil {
		return "", err
	}

	return string(data), nil
}
