package rankings

import (
	"bytes"
	"math"
	"strings"

	"wcl_rankings/warcraftlogs"

	jsoniter "github.com/json-iterator/go"
	"github.com/pkg/errors"
)

// Parse walks data.worldData.encounter and normalizes characterRankings.
//
// characterRankings arrives as a JSON string holding another JSON document.
// The string is decoded first and its content second, each failing with its
// own ParseError. A native object is accepted as well.
//
// Rows keep the API order. Ranks must run 1..N; a duplicate or a gap is
// reported, never repaired.
func Parse(resp *warcraftlogs.Response) (*Page, error) {
	page, err := parse(resp)
	if err != nil {
		return nil, errors.WithStack(err)
	}
	return page, nil
}

func parse(resp *warcraftlogs.Response) (*Page, error) {
	if resp == nil || isNull(resp.Data) {
		return nil, missing(-1, "data")
	}

	var data struct {
		WorldData *struct {
			Encounter *struct {
				Name              *string             `json:"name"`
				CharacterRankings jsoniter.RawMessage `json:"characterRankings"`
			} `json:"encounter"`
		} `json:"worldData"`
	}
	if err := jsoniter.Unmarshal(resp.Data, &data); err != nil {
		return nil, invalid(-1, "data", "unexpected shape: %v", err)
	}
	if data.WorldData == nil {
		return nil, missing(-1, "data.worldData")
	}
	encounter := data.WorldData.Encounter
	if encounter == nil {
		return nil, missing(-1, "data.worldData.encounter")
	}
	if encounter.Name == nil || *encounter.Name == "" {
		return nil, missing(-1, "data.worldData.encounter.name")
	}

	payload, err := unwrapRankings(encounter.CharacterRankings)
	if err != nil {
		return nil, err
	}

	entries, err := splitRankings(payload)
	if err != nil {
		return nil, err
	}

	rows := make([]Row, 0, len(entries))
	for i, raw := range entries {
		row, err := parseEntry(i, raw)
		if err != nil {
			return nil, err
		}
		rows = append(rows, row)
	}

	if err := checkRanks(rows); err != nil {
		return nil, err
	}

	return &Page{
		EncounterName: *encounter.Name,
		Rows:          rows,
	}, nil
}

const fieldCharacterRankings = "data.worldData.encounter.characterRankings"

// unwrapRankings is the second decode stage: the string field to its JSON text.
func unwrapRankings(raw jsoniter.RawMessage) ([]byte, error) {
	raw = bytes.TrimSpace(raw)
	if isNull(raw) {
		return nil, missing(-1, fieldCharacterRankings)
	}

	switch raw[0] {
	case '"':
		var s string
		if err := jsoniter.Unmarshal(raw, &s); err != nil {
			return nil, invalid(-1, fieldCharacterRankings, "bad string literal: %v", err)
		}
		if s == "" {
			return nil, missing(-1, fieldCharacterRankings)
		}
		return []byte(s), nil

	case '{':
		return raw, nil
	}

	return nil, invalid(-1, fieldCharacterRankings, "expected a JSON-encoded string, got %s", kindOf(raw))
}

// splitRankings is the third decode stage: the unwrapped document to entries.
func splitRankings(payload []byte) ([]jsoniter.RawMessage, error) {
	var doc map[string]jsoniter.RawMessage
	if err := jsoniter.Unmarshal(payload, &doc); err != nil {
		return nil, invalid(-1, fieldCharacterRankings, "invalid JSON: %v", err)
	}

	raw, ok := doc["rankings"]
	if !ok || isNull(raw) {
		return nil, missing(-1, "rankings")
	}

	var entries []jsoniter.RawMessage
	if err := jsoniter.Unmarshal(raw, &entries); err != nil {
		return nil, invalid(-1, "rankings", "expected an array, got %s", kindOf(raw))
	}
	return entries, nil
}

func parseEntry(index int, raw jsoniter.RawMessage) (row Row, err error) {
	var fields map[string]jsoniter.RawMessage
	if isNull(raw) || jsoniter.Unmarshal(raw, &fields) != nil {
		return row, invalid(index, "", "expected an object, got %s", kindOf(raw))
	}
	e := entry{index: index, fields: fields}

	if row.Rank, err = e.integer("rank"); err != nil {
		return
	}
	if row.PlayerName, err = e.str("name"); err != nil {
		return
	}
	if row.DPS, err = e.number("amount"); err != nil {
		return
	}
	if row.ClassName, err = e.str("class"); err != nil {
		return
	}
	if row.SpecName, err = e.str("spec"); err != nil {
		return
	}
	if row.GuildName, err = e.optionalStr("guild", "name"); err != nil {
		return
	}
	if row.GuildName == "" {
		row.GuildName = NoGuild
	}
	if row.ServerName, err = e.str("server", "name"); err != nil {
		return
	}
	if row.ReportCode, err = e.str("report", "code"); err != nil {
		return
	}
	return row, nil
}

func checkRanks(rows []Row) error {
	for i, row := range rows {
		if row.Rank != i+1 {
			return invalid(i, "rank", "expected %d, got %d (duplicate or non-contiguous rank)", i+1, row.Rank)
		}
	}
	return nil
}

////////////////////////////////////////////////////////////////////////////////////////////////////

type entry struct {
	index  int
	fields map[string]jsoniter.RawMessage
}

// lookup follows path through nested objects. A missing or null value at any
// step returns ok == false.
func (e entry) lookup(path ...string) (raw jsoniter.RawMessage, ok bool, err error) {
	fields := e.fields
	for i, key := range path {
		raw, ok = fields[key]
		if !ok || isNull(raw) {
			return nil, false, nil
		}
		if i == len(path)-1 {
			break
		}

		fields = nil
		if jsoniter.Unmarshal(raw, &fields) != nil {
			return nil, false, invalid(e.index, strings.Join(path[:i+1], "."), "expected an object, got %s", kindOf(raw))
		}
	}
	return raw, true, nil
}

func (e entry) str(path ...string) (string, error) {
	raw, ok, err := e.lookup(path...)
	if err != nil {
		return "", err
	}
	if !ok {
		return "", missing(e.index, strings.Join(path, "."))
	}

	var s string
	if jsoniter.Unmarshal(raw, &s) != nil {
		return "", invalid(e.index, strings.Join(path, "."), "expected a string, got %s", kindOf(raw))
	}
	return s, nil
}

func (e entry) optionalStr(path ...string) (string, error) {
	raw, ok, err := e.lookup(path...)
	if err != nil || !ok {
		return "", err
	}

	var s string
	if jsoniter.Unmarshal(raw, &s) != nil {
		return "", invalid(e.index, strings.Join(path, "."), "expected a string, got %s", kindOf(raw))
	}
	return s, nil
}

func (e entry) number(path ...string) (float64, error) {
	raw, ok, err := e.lookup(path...)
	if err != nil {
		return 0, err
	}
	if !ok {
		return 0, missing(e.index, strings.Join(path, "."))
	}

	var f float64
	if kindOf(raw) != "number" || jsoniter.Unmarshal(raw, &f) != nil {
		return 0, invalid(e.index, strings.Join(path, "."), "expected a number, got %s", kindOf(raw))
	}
	return f, nil
}

func (e entry) integer(path ...string) (int, error) {
	f, err := e.number(path...)
	if err != nil {
		return 0, err
	}
	if f != math.Trunc(f) || math.Abs(f) > math.MaxInt32 {
		return 0, invalid(e.index, strings.Join(path, "."), "expected an integer, got %v", f)
	}
	return int(f), nil
}

////////////////////////////////////////////////////////////////////////////////////////////////////

func isNull(raw []byte) bool {
	raw = bytes.TrimSpace(raw)
	return len(raw) == 0 || bytes.Equal(raw, []byte("null"))
}

func kindOf(raw []byte) string {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 {
		return "nothing"
	}

	switch raw[0] {
	case '"':
		return "string"
	case '{':
		return "object"
	case '[':
		return "array"
	case 't', 'f':
		return "bool"
	case 'n':
		return "null"
	}
	return "number"
}
