package cmd

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/rotomet/rotomet/internal/bdl"
	"github.com/rotomet/rotomet/internal/model"
	"github.com/rotomet/rotomet/internal/sleeper"
	"github.com/rotomet/rotomet/internal/storage"
)

// fetch command flags.
var (
	// fetchWeek is the current scoring week; 0 skips matchup starters and the
	// recent stat window.
	fetchWeek int
	// fetchScheduleDays is how many days of schedule to pull.
	fetchScheduleDays int
	// fetchSkipPlayers skips the large player-directory download.
	fetchSkipPlayers bool
	// fetchForce refetches even when the cache is still fresh.
	fetchForce bool
)

// fetchTTL is how long a cached league counts as fresh.
const fetchTTL = 6 * time.Hour

var fetchCmd = &cobra.Command{
	Use:   "fetch",
	Short: "Pull league, rosters, stats, and schedule into the local cache",
	Long: `Fetches the league's settings, rosters, player directory, and stat
windows from Sleeper, plus the upcoming game schedule from balldontlie, and
caches everything locally. Every analysis command reads from the cache.

Examples:
  rotomet fetch --league 987654 --week 12
  rotomet fetch --week 12 --schedule-days 14`,
	Args: cobra.NoArgs,
	RunE: runFetch,
}

func init() {
	fetchCmd.Flags().IntVar(&fetchWeek, "week", 0, "current scoring week (enables matchup starters and the recent window)")
	fetchCmd.Flags().IntVar(&fetchScheduleDays, "schedule-days", 14, "days of schedule to cache")
	fetchCmd.Flags().BoolVar(&fetchSkipPlayers, "skip-players", false, "skip the player directory download (~5 MB)")
	fetchCmd.Flags().BoolVar(&fetchForce, "force", false, "refetch even if the cache is fresh")
	rootCmd.AddCommand(fetchCmd)
}

func runFetch(cmd *cobra.Command, args []string) error {
	if leagueID == "" {
		return fmt.Errorf("no league configured: pass --league or set league_id in %s", cfgPath)
	}
	db, err := openDB()
	if err != nil {
		return err
	}
	defer db.Close()

	if !fetchForce {
		if fresh, age := cacheFresh(db); fresh {
			fmt.Printf("Cache is %s old (fresh for %s), skipping. Use --force to refetch.\n",
				age.Round(time.Minute), fetchTTL)
			return nil
		}
	}

	client := sleeper.NewClient()

	if err := fetchLeague(db, client); err != nil {
		return err
	}
	if err := fetchRosters(db, client); err != nil {
		return err
	}
	if !fetchSkipPlayers {
		if err := fetchPlayers(db, client); err != nil {
			return err
		}
	}
	if err := fetchStats(db, client); err != nil {
		return err
	}
	if err := fetchSchedule(db); err != nil {
		return err
	}

	fmt.Println("\nDone. Run 'rotomet values' to see the board.")
	return nil
}

// cacheFresh reports whether the cached league was fetched within fetchTTL.
func cacheFresh(db *storage.DB) (bool, time.Duration) {
	info, err := db.GetLeague(leagueID)
	if err != nil || info == nil {
		return false, 0
	}
	fetched, err := time.Parse(time.RFC3339, info.FetchedAt)
	if err != nil {
		return false, 0
	}
	age := time.Since(fetched)
	return age >= 0 && age < fetchTTL, age
}

func fetchLeague(db *storage.DB, client *sleeper.Client) error {
	l, err := client.GetLeague(leagueID)
	if err != nil {
		return fmt.Errorf("fetch league: %w", err)
	}
	if l.Season != "" {
		season = l.Season
	}
	info := model.LeagueInfo{
		LeagueID:        l.LeagueID,
		Name:            l.Name,
		Season:          season,
		Scoring:         l.ScoringSettings,
		RosterPositions: l.RosterPositions,
		FetchedAt:       time.Now().UTC().Format(time.RFC3339),
	}
	if err := db.UpsertLeague(info); err != nil {
		return fmt.Errorf("cache league: %w", err)
	}
	fmt.Printf("League: %s  season=%s  categories=%d  slots=%d\n",
		l.Name, season, len(l.ScoringSettings), len(l.RosterPositions))
	return nil
}

func fetchRosters(db *storage.DB, client *sleeper.Client) error {
	entries, err := client.GetRosters(leagueID)
	if err != nil {
		return fmt.Errorf("fetch rosters: %w", err)
	}
	users, err := client.GetUsers(leagueID)
	if err != nil {
		return fmt.Errorf("fetch users: %w", err)
	}
	nameByUser := make(map[string]string, len(users))
	for _, u := range users {
		nameByUser[u.UserID] = u.DisplayName
	}

	rosters := make([]model.Roster, 0, len(entries))
	for _, e := range entries {
		rosters = append(rosters, model.Roster{
			RosterID:  e.RosterID,
			OwnerID:   e.OwnerID,
			OwnerName: nameByUser[e.OwnerID],
			Players:   e.Players,
			Starters:  e.Starters,
		})
	}
	if err := db.UpsertRosters(leagueID, rosters); err != nil {
		return fmt.Errorf("cache rosters: %w", err)
	}
	fmt.Printf("Rosters: %d cached\n", len(rosters))

	if fetchWeek <= 0 {
		return nil
	}
	matchups, err := client.GetMatchups(leagueID, fetchWeek)
	if err != nil {
		log.Warn().Err(err).Int("week", fetchWeek).Msg("matchups unavailable, using stored starters")
		return nil
	}
	starters := make([]model.MatchupStarters, 0, len(matchups))
	for _, m := range matchups {
		starters = append(starters, model.MatchupStarters{RosterID: m.RosterID, Starters: m.Starters})
	}
	if err := db.UpsertMatchupStarters(leagueID, starters); err != nil {
		return fmt.Errorf("cache matchup starters: %w", err)
	}
	fmt.Printf("Matchup starters: week %d cached\n", fetchWeek)
	return nil
}

func fetchPlayers(db *storage.DB, client *sleeper.Client) error {
	directory, err := client.GetPlayers()
	if err != nil {
		return fmt.Errorf("fetch player directory: %w", err)
	}
	players := make([]model.PlayerMeta, 0, len(directory))
	for id, p := range directory {
		players = append(players, model.PlayerMeta{
			PlayerID:     id,
			FullName:     p.FullName,
			FirstName:    p.FirstName,
			LastName:     p.LastName,
			SearchName:   p.SearchFullName,
			Team:         p.Team,
			Position:     p.Position,
			InjuryStatus: p.InjuryStatus,
		})
	}
	if err := db.UpsertPlayers(players); err != nil {
		return fmt.Errorf("cache players: %w", err)
	}
	fmt.Printf("Player directory: %d cached\n", len(players))
	return nil
}

func fetchStats(db *storage.DB, client *sleeper.Client) error {
	seasonStats, err := client.GetSeasonStats(season)
	if err != nil {
		return fmt.Errorf("fetch season stats: %w", err)
	}
	records := make(map[string]model.StatRecord, len(seasonStats))
	for id, line := range seasonStats {
		records[id] = model.StatRecordFromMap(line)
	}
	if err := db.UpsertStats(season, model.WindowSeason, records); err != nil {
		return fmt.Errorf("cache season stats: %w", err)
	}
	fmt.Printf("Season stats: %d players\n", len(records))

	if fetchWeek <= 0 {
		fmt.Println("Recent window skipped (pass --week to enable)")
		return nil
	}

	firstWeek := fetchWeek - cfg.RecentWeeks + 1
	if firstWeek < 1 {
		firstWeek = 1
	}
	recent := make(map[string]map[string]float64)
	for week := firstWeek; week <= fetchWeek; week++ {
		weekStats, err := client.GetWeekStats(season, week)
		if err != nil {
			return fmt.Errorf("fetch week %d stats: %w", week, err)
		}
		for id, line := range weekStats {
			total, ok := recent[id]
			if !ok {
				total = make(map[string]float64, len(line))
				recent[id] = total
			}
			for k, v := range line {
				total[k] += v
			}
		}
	}

	recentRecords := make(map[string]model.StatRecord, len(recent))
	for id, line := range recent {
		rec := model.StatRecordFromMap(line)
		// Ratio stats don't survive summing across weeks; rebuild them from
		// the summed components.
		rec.AstTO = safeRatio(rec.Ast, rec.TOV)
		rec.StlTO = safeRatio(rec.Stl, rec.TOV)
		recentRecords[id] = rec
	}
	if err := db.UpsertStats(season, model.WindowRecent, recentRecords); err != nil {
		return fmt.Errorf("cache recent stats: %w", err)
	}
	fmt.Printf("Recent stats: weeks %d-%d, %d players\n", firstWeek, fetchWeek, len(recentRecords))
	return nil
}

func safeRatio(num, den float64) float64 {
	if den <= 0 {
		return num
	}
	return num / den
}

func fetchSchedule(db *storage.DB) error {
	apiKey := cfg.BallDontLieKey
	if v := os.Getenv("BALLDONTLIE_API_KEY"); v != "" {
		apiKey = v
	}
	if apiKey == "" {
		log.Warn().Msg("no balldontlie API key, schedule skipped (streaming needs it)")
		return nil
	}

	start := time.Now().UTC()
	end := start.AddDate(0, 0, fetchScheduleDays-1)
	games, err := bdl.NewClient(apiKey).GamesBetween(
		start.Format("2006-01-02"), end.Format("2006-01-02"))
	if err != nil {
		return fmt.Errorf("fetch schedule: %w", err)
	}

	summaries := make([]model.GameSummary, 0, len(games))
	for _, g := range games {
		summaries = append(summaries, model.GameSummary{
			GameID:   strconv.Itoa(g.ID),
			Date:     g.Date,
			HomeTeam: g.HomeTeam.Abbreviation,
			AwayTeam: g.Visitor.Abbreviation,
			Status:   g.Status,
		})
	}
	if err := db.UpsertGames(summaries); err != nil {
		return fmt.Errorf("cache schedule: %w", err)
	}
	fmt.Printf("Schedule: %d games over %d days\n", len(summaries), fetchScheduleDays)
	return nil
}
