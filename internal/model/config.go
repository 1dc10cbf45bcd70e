package model

import "runtime"

// Config holds the complete pdxlint configuration.
// Values come from (highest to lowest priority): CLI flags, PDXLINT_* env
// vars, the config file, and the defaults below.
type Config struct {
	Scan   ScanConfig   `yaml:"scan" mapstructure:"scan"`
	Rules  RulesConfig  `yaml:"rules" mapstructure:"rules"`
	Output OutputConfig `yaml:"output" mapstructure:"output"`
}

// ScanConfig controls corpus selection and extraction.
type ScanConfig struct {
	// IgnoredDirs are directory names excluded from every scan. They hold
	// graphics, tooling, resources, docs and map data, none of which are
	// authoritative for script symbols.
	IgnoredDirs []string `yaml:"ignored_dirs" mapstructure:"ignored_dirs"`

	// Workers is the number of goroutines used to read and pattern-scan
	// files during extraction.
	Workers int `yaml:"workers" mapstructure:"workers"`
}

// OutputConfig controls report rendering.
type OutputConfig struct {
	Color   bool `yaml:"color" mapstructure:"color"`
	Verbose bool `yaml:"verbose" mapstructure:"verbose"`
}

// RulesConfig holds the false-positive suppression lists. A symbol is
// dropped from a check when any rule string is a substring of it, so a
// single rule can suppress a whole family of generated names.
type RulesConfig struct {
	// Generic applies to every flag check that has no dedicated list.
	Generic []string `yaml:"generic" mapstructure:"generic"`

	// CountryFlags applies to the cleared and missing country flag checks.
	CountryFlags []string `yaml:"country_flags" mapstructure:"country_flags"`

	// CountryFlagsUnused applies to the unused country flag check.
	CountryFlagsUnused []string `yaml:"country_flags_unused" mapstructure:"country_flags_unused"`

	// GlobalFlagsUnused applies to the unused global flag check.
	GlobalFlagsUnused []string `yaml:"global_flags_unused" mapstructure:"global_flags_unused"`

	// EventTargetsMissing applies to the used-but-not-set event target check.
	EventTargetsMissing []string `yaml:"event_targets_missing" mapstructure:"event_targets_missing"`

	// EventTargetsUnused applies to the set-but-not-used event target check.
	EventTargetsUnused []string `yaml:"event_targets_unused" mapstructure:"event_targets_unused"`

	// ScriptedLoc applies to both scripted localisation checks.
	ScriptedLoc []string `yaml:"scripted_localisation" mapstructure:"scripted_localisation"`
}

// Check identifies one of the three defect checks run per universe.
type Check string

const (
	CheckCleared Check = "cleared"
	CheckMissing Check = "missing"
	CheckUnused  Check = "unused"
)

// FlagRules returns the false-positive list for a flag check.
func (c *Config) FlagRules(kind FlagKind, check Check) []string {
	switch {
	case kind == FlagCountry && check == CheckUnused:
		return c.Rules.CountryFlagsUnused
	case kind == FlagCountry:
		return c.Rules.CountryFlags
	case kind == FlagGlobal && check == CheckUnused:
		return c.Rules.GlobalFlagsUnused
	default:
		return c.Rules.Generic
	}
}

// DefaultConfig returns the built-in configuration. The suppression lists
// carry the known benign patterns from the mod: templated names (@, [, {),
// flags set by external integrations, and loc helper tokens that the
// extraction patterns cannot tell apart from scripted localisation keys.
func DefaultConfig() *Config {
	return &Config{
		Scan: ScanConfig{
			IgnoredDirs: []string{"gfx", "tools", "resources", "docs", "map"},
			Workers:     runtime.NumCPU(),
		},
		Output: OutputConfig{
			Color: true,
		},
		Rules: RulesConfig{
			Generic: []string{"@", "[", "{"},
			CountryFlags: []string{
				"@", "[", "{",
				"ire_got_guarantee",
				"ire_rejected_guarantee",
				"nfa_rebelled",
				"ire_alliance_refused",
				"nfa_previously_rebelled",
				"rom_deal",
				"rus_can_core",
				"sent_volunteers",
				"china_refused_alliance",
				"_QMV_voted",
				"recognised_opponent_",
				"rival_government_",
				"_QMV",
				"trade_agreement",
				"mutual_investment_treaty_",
				"libya_casablanca_accords_signed_by_",
				"_EP_agenda",
				"initiated_blockade_",
			},
			CountryFlagsUnused: []string{
				"@", "[", "{",
				"saf_antagonise_",
				"default_puppet",
				"_QMV_voted",
				"_EP_approval",
				"recognised_opponent_",
			},
			GlobalFlagsUnused: []string{
				"@", "[", "{",
				"kr_current_version",
				"_QMV_result",
				"_QMV_voted",
			},
			EventTargetsMissing: []string{"."},
			EventTargetsUnused: []string{
				"wca_usa_floyd_olson",
				"wca_usa_al_smith",
				"target_value",
			},
			ScriptedLoc: []string{
				"root.getname",
				"this.getname",
				"from.getname",
				"prev.getname",
				"root.getadjective",
				"this.getadjective",
				"from.getadjective",
				"getdatetext",
				"getyear",
				"getmonth",
				"getday",
				"tt",
				"_tt",
				"_desc",
				"_title",
				"button",
				"gfx_",
				"tooltip",
				"§",
				"£",
				"$",
				"var:",
				"@",
				"[",
			},
		},
	}
}
