package rankings

// NoGuild is shown for players without a guild.
const NoGuild = "N/A"

// Row is one ranked player, flattened from a characterRankings entry.
type Row struct {
	Rank       int
	PlayerName string
	DPS        float64
	ClassName  string
	SpecName   string
	GuildName  string
	ServerName string
	ReportCode string
}

// Page is one parsed ranking page in API order.
type Page struct {
	EncounterName string
	Rows          []Row
}
