package styles

// Nerd Font icons (requires a Nerd Font in the terminal).
const (
	IconVersion   = "" //  tag
	IconGitBranch = "" //  git branch
	IconCalendar  = "" //  calendar
	IconGithub    = "" //  github
	IconLayers    = "" // layers
	IconGo        = "" //  go gopher

	IconTruck    = "" // truck
	IconRoute    = "" // route
	IconUser     = "" // user
	IconMapPin   = "" // map marker
	IconDatabase = "" // database
	IconConfig   = "" // config
	IconCursor   = "" // chevron-right
	IconClock    = "" // clock
)
