package rankings

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseThenRender(t *testing.T) {
	resp := responseOf(t, []obj{
		{
			"rank": 1, "name": "Alpha", "amount": 100.005, "class": "Mage", "spec": "Fire",
			"guild":  obj{"name": "Liquid"},
			"server": obj{"name": "Illidan"},
			"report": obj{"code": "aBcD1234"},
		},
		{
			"rank": 2, "name": "Bravo", "amount": 99.994, "class": "Warrior", "spec": "Fury",
			"guild":  obj{"name": "Echo"},
			"server": obj{"name": "Tarren Mill"},
			"report": obj{"code": "eFgH5678"},
		},
		{
			"rank": 3, "name": "Charlie", "amount": 50.0, "class": "Priest", "spec": "Shadow",
			"guild":  obj{"name": ""},
			"server": obj{"name": "Area 52"},
			"report": obj{"code": "iJkL9012"},
		},
	})

	page, err := Parse(resp)
	require.NoError(t, err)

	md := Render(Title(len(page.Rows), "dps", page.EncounterName, "Mythic"), page.Rows)
	assert.Equal(t, ""+
		"## Top 3 DPS Rankings for Gallywix (Mythic)\n"+
		"\n"+
		"| Rank | Player | DPS | Class | Spec | Guild | Server | Report |\n"+
		"| --- | --- | --- | --- | --- | --- | --- | --- |\n"+
		"| 1 | Alpha | 100.00 | Mage | Fire | Liquid | Illidan | aBcD1234 |\n"+
		"| 2 | Bravo | 99.99 | Warrior | Fury | Echo | Tarren Mill | eFgH5678 |\n"+
		"| 3 | Charlie | 50.00 | Priest | Shadow | N/A | Area 52 | iJkL9012 |\n",
		md,
	)
}
