package cfn

import (
	"fmt"
	"reflect"
	"sort"
	"strings"

	"github.com/r3labs/diff/v3"
)

type Action string

const (
	ActionAdd    Action = "Add"
	ActionRemove Action = "Remove"
	ActionModify Action = "Modify"
)

// PropertyChange is one changed value inside a modified entry. Path is
// dotted, with list indexes as path elements (Properties.Tags.0.Value).
type PropertyChange struct {
	Path string `json:"path"`
	From any    `json:"from,omitempty"`
	To   any    `json:"to,omitempty"`
}

// Change describes one added, removed or modified entry of a template section.
type Change struct {
	Section    string           `json:"section"`
	LogicalID  string           `json:"logicalId"`
	Type       string           `json:"type,omitempty"`
	Action     Action           `json:"action"`
	Properties []PropertyChange `json:"properties,omitempty"`
}

func (c Change) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s %s.%s", c.Action, c.Section, c.LogicalID)
	if c.Type != "" {
		fmt.Fprintf(&b, " (%s)", c.Type)
	}
	return b.String()
}

var diffSections = []string{"Parameters", "Mappings", "Conditions", "Resources", "Outputs"}

// Diff compares two templates section by section. Either template may be
// nil, meaning empty.
func Diff(oldTemplate, newTemplate *Template) ([]Change, error) {
	oldDoc, newDoc := documentOf(oldTemplate), documentOf(newTemplate)

	var changes []Change
	for _, key := range []string{"Description", "Transform"} {
		if !reflect.DeepEqual(oldDoc[key], newDoc[key]) {
			changes = append(changes, Change{
				Section:    "Template",
				LogicalID:  key,
				Action:     ActionModify,
				Properties: []PropertyChange{{Path: key, From: oldDoc[key], To: newDoc[key]}},
			})
		}
	}

	for _, section := range diffSections {
		oldSection, _ := oldDoc[section].(map[string]any)
		newSection, _ := newDoc[section].(map[string]any)

		ids := map[string]struct{}{}
		for id := range oldSection {
			ids[id] = struct{}{}
		}
		for id := range newSection {
			ids[id] = struct{}{}
		}

		for _, id := range sortedMapKeys(ids) {
			before, inOld := oldSection[id]
			after, inNew := newSection[id]

			change := Change{Section: section, LogicalID: id}
			if section == "Resources" {
				change.Type = resourceType(after)
				if change.Type == "" {
					change.Type = resourceType(before)
				}
			}

			switch {
			case !inOld:
				change.Action = ActionAdd
			case !inNew:
				change.Action = ActionRemove
			default:
				props, err := propertyChanges(before, after)
				if err != nil {
					return nil, fmt.Errorf("failed to diff %s.%s: %w", section, id, err)
				}
				if len(props) == 0 {
					continue
				}
				change.Action = ActionModify
				change.Properties = props
			}
			changes = append(changes, change)
		}
	}

	return changes, nil
}

func documentOf(t *Template) map[string]any {
	if t == nil {
		return map[string]any{}
	}
	return t.Document()
}

func resourceType(v any) string {
	m, _ := v.(map[string]any)
	t, _ := m["Type"].(string)
	return t
}

func propertyChanges(before, after any) ([]PropertyChange, error) {
	changelog, err := diff.Diff(before, after, diff.SliceOrdering(true), diff.AllowTypeMismatch(true))
	if err != nil {
		return nil, err
	}

	props := make([]PropertyChange, 0, len(changelog))
	for _, c := range changelog {
		props = append(props, PropertyChange{
			Path: strings.Join(c.Path, "."),
			From: c.From,
			To:   c.To,
		})
	}
	sort.SliceStable(props, func(i, j int) bool { return props[i].Path < props[j].Path })
	return props, nil
}
