package domain

import (
	"encoding/json"
	"strings"
)

// EncodeAddOnIDs produces the legacy JSON array stored in services.addons.
func EncodeAddOnIDs(ids []string) (string, error) {
	if ids == nil {
		ids = []string{}
	}
	b, err := json.Marshal(ids)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

func DecodeAddOnIDs(raw string) ([]string, error) {
	if strings.TrimSpace(raw) == "" {
		return []string{}, nil
	}
	var ids []string
	if err := json.Unmarshal([]byte(raw), &ids); err != nil {
		return nil, err
	}
	if ids == nil {
		ids = []string{}
	}
	return ids, nil
}

// ResolveAddOnNames renders the selected add-ons for display: "None" when
// nothing known is selected and "Invalid" when the stored list is unreadable.
func ResolveAddOnNames(raw string, catalog []AddOn) (string, []AddOn) {
	ids, err := DecodeAddOnIDs(raw)
	if err != nil {
		return "Invalid", nil
	}

	selected := make(map[string]struct{}, len(ids))
	for _, id := range ids {
		selected[id] = struct{}{}
	}

	var details []AddOn
	var names []string
	for _, a := range catalog {
		if _, ok := selected[a.ID]; !ok {
			continue
		}
		details = append(details, a)
		if a.Name != "" {
			names = append(names, a.Name)
		}
	}
	if len(names) == 0 {
		return "None", details
	}
	return strings.Join(names, ", "), details
}
