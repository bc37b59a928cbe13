package config

import "time"

// Base application details
const AppName = "fret"
const ConfigDirName = "fret"
const ThemesDirName = "themes"
const DefaultThemeFileName = "theme.toml"   // Active theme file
const DefaultConfigFileName = "config.toml" // Main config file
const DefaultLogFileName = "fret.log"
const TabFileExtension = ".tab"

// UI Layout
const StatusBarHeight = 1

// Input Behavior
const DigitTimeout = 500 * time.Millisecond // second fret digit must follow within this

// Status Bar
const MessageTimeout = 4 * time.Second

// Editor defaults
const DefaultMaxUndo = 100
const DefaultGridDivision = 8 // cursor step is 1/8 of a whole note
const DefaultDuration = 0.125
const SystemClipboard = true

// MaxGridDivision bounds the cursor step to a 1/64 note.
const MaxGridDivision = 64
