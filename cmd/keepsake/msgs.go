package keepsake

// Short messages (one-liners)
const (
	// Command descriptions
	MsgRootShort    = "Inspect and exercise keepsake stores"
	MsgRootLong     = "keepsake keeps one typed value per file under the cache, data and config\ndirectories of an application and creates a default file on first use."
	MsgPathsShort   = "Print the cache, data and config roots"
	MsgPathShort    = "Print the file path for a category and identifier"
	MsgShowShort    = "Print the stored bytes for a category and identifier"
	MsgRmShort      = "Delete the file for a category and identifier"
	MsgCounterShort = "Read or change the counter store"
	MsgCounterLong  = "counter reads, increments or resets a Data store named by --id.\nThe file is created with a zero count the first time it is used."
	MsgVersionShort = "Print version information"

	// Output
	MsgRootLine      = "%s %s\n"
	MsgCounterValue  = "%s: %d\n"
	MsgVersionFormat = "keepsake %s (commit %s, built %s)\n"
	MsgRemoved       = "removed %s\n"

	// Error messages
	MsgErrNoCommand   = "no command specified"
	MsgErrSettings    = "failed to load settings: %w"
	MsgErrStorage     = "failed to set up storage: %w"
	MsgErrNotStored   = "nothing stored at %s"
	MsgErrReadStored  = "failed to read %s: %w"
	MsgErrRmStored    = "failed to remove %s: %w"
	MsgErrCounterOpen = "failed to open counter: %w"
	MsgErrCounterSave = "failed to save counter: %w"
	MsgErrUnknownOp   = "unknown counter operation %q (want get, incr or reset)"

	// Flag descriptions
	MsgFlagVerbose     = "Increase verbosity (-v INFO, -vv DEBUG, -vvv TRACE)"
	MsgFlagConfig      = "Settings file (TOML or YAML, by extension)"
	MsgFlagApp         = "Application id used to derive the default roots"
	MsgFlagCodec       = "File format: toml or yaml"
	MsgFlagMemory      = "Keep every file in memory; nothing touches the disk"
	MsgFlagID          = "Identifier of the counter file"
	MsgFlagBy          = "Amount to increment by"
	MsgFlagUncommitted = "Apply each increment in memory and save once at the end"
	MsgFlagDryRun      = "Change the counter in memory only"
)
