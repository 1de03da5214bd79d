package feed

import (
	"encoding/json"
	"os"
)

// LoadJSON reads a saved feed response from disk, e.g. a payload captured
// with curl for offline use by the CLI and demo.
func LoadJSON(path string) (*Response, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var resp Response
	if err := json.Unmarshal(raw, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// RegionNames lists the region names present in a response, in payload order.
func RegionNames(resp *Response) []string {
	if resp == nil {
		return nil
	}
	names := make([]string, 0, len(resp.Regions))
	for _, r := range resp.Regions {
		names = append(names, r.Name)
	}
	return names
}
