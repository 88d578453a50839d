// internal/app/features/attendance/types.go
package attendance

import (
	"bytes"
	"encoding/json"
)

// MemberStatus is the per-member leaf of the report.
type MemberStatus struct {
	Name            string   `json:"name"`
	AvatarURL       string   `json:"avatar_url"`
	StatusUpdatedAt *float64 `json:"status_updated_at"`
	Status          int      `json:"status"`
	Message         string   `json:"message"`
}

// memberEntry pairs a display-name key with its status so the group can
// remember insertion order.
type memberEntry struct {
	key    string
	status MemberStatus
}

// Group holds one class subgroup's members in insertion order. The wire
// format is a JSON object keyed by "family_name given_name"; a duplicate
// display name overwrites the earlier entry in place.
type Group struct {
	Code    string
	members []memberEntry
}

// put inserts or overwrites the entry for key, preserving its position when
// overwriting.
func (g *Group) put(key string, status MemberStatus) {
	for i := range g.members {
		if g.members[i].key == key {
			g.members[i].status = status
			return
		}
	}
	g.members = append(g.members, memberEntry{key: key, status: status})
}

// Class holds one class level's subgroups in sorted order.
type Class struct {
	Prefix string
	Groups []*Group
}

// Report is the full nested structure: class prefix → group code → member.
// Internally it is typed and ordered; only MarshalJSON flattens it into the
// nested-object wire shape, emitting keys in the already-sorted order.
type Report struct {
	Classes []*Class
}

// orderedObject writes a JSON object from parallel key/value slices without
// the key reordering a map would introduce.
func orderedObject(keys []string, values []json.RawMessage) ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, k := range keys {
		if i > 0 {
			buf.WriteByte(',')
		}
		kb, err := json.Marshal(k)
		if err != nil {
			return nil, err
		}
		buf.Write(kb)
		buf.WriteByte(':')
		buf.Write(values[i])
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

func (g *Group) MarshalJSON() ([]byte, error) {
	keys := make([]string, 0, len(g.members))
	values := make([]json.RawMessage, 0, len(g.members))
	for _, m := range g.members {
		v, err := json.Marshal(m.status)
		if err != nil {
			return nil, err
		}
		keys = append(keys, m.key)
		values = append(values, v)
	}
	return orderedObject(keys, values)
}

func (c *Class) MarshalJSON() ([]byte, error) {
	keys := make([]string, 0, len(c.Groups))
	values := make([]json.RawMessage, 0, len(c.Groups))
	for _, g := range c.Groups {
		v, err := json.Marshal(g)
		if err != nil {
			return nil, err
		}
		keys = append(keys, g.Code)
		values = append(values, v)
	}
	return orderedObject(keys, values)
}

func (r Report) MarshalJSON() ([]byte, error) {
	keys := make([]string, 0, len(r.Classes))
	values := make([]json.RawMessage, 0, len(r.Classes))
	for _, c := range r.Classes {
		v, err := json.Marshal(c)
		if err != nil {
			return nil, err
		}
		keys = append(keys, c.Prefix)
		values = append(values, v)
	}
	return orderedObject(keys, values)
}
