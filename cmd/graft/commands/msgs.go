package commands

// Command descriptions
const (
	MsgRootShort = "Install a package's stubs, env keys and routes into an application"
	MsgRootLong  = `graft mirrors a package's stub tree into a host application and keeps two
shared files in step with it: the env files receive the package's keys and the
route file receives a marked block of route declarations.

Every command recomputes its work from the current stub tree; nothing is
recorded between runs.`

	MsgInstallShort = "Copy stubs and add env keys and routes"
	MsgInstallLong  = `Install copies every stub into the application, appends missing package keys
to the env files and adds the route block.

Existing files are replaced unless --no-overwrite is given.`
	MsgInstallExample = `  # Install, replacing files that already exist
  graft install

  # Keep files that already exist and leave .env alone
  graft install --no-overwrite --skip-env`

	MsgUpdateShort = "Refresh installed stubs, overwriting existing files"
	MsgUpdateLong  = `Update is install with overwrite forced on. Local changes to installed files
are lost, so it asks for confirmation unless --force is given.`

	MsgUninstallShort = "Remove installed stubs, env keys and routes"
	MsgUninstallLong  = `Uninstall deletes every file the current stub tree maps to, prunes directories
left empty, strips the package keys from the env files and removes the route
block.

Files from older versions of the stub tree that no longer exist in it are not
removed.`

	MsgGenConfigShort   = "Print the effective configuration as TOML"
	MsgGenConfigLong    = "Print the merged configuration (defaults, config file, environment and flags) as a TOML document."
	MsgGenConfigExample = `  graft genconfig            # Output to stdout
  graft genconfig -w         # Write to ./.graft.toml`

	MsgCategoriesShort = "List stub categories and where they are installed"
	MsgVersionShort    = "Print version information"
)

// Prompts and status messages
const (
	MsgConfirmUpdate    = "Overwrite installed files with the package stubs?"
	MsgConfirmUninstall = "Remove installed files, env keys and routes?"
	MsgAborted          = "Aborted, nothing was changed."
	MsgConfigWritten    = "Wrote %s\n"
	MsgStudlyNote       = "StudlyCase first segment"
	MsgVersionFormat    = "graft version %s\n"
	MsgCommitFormat     = "Commit: %s\n"
	MsgBuiltFormat      = "Built:  %s\n"
)

// Error messages
const (
	MsgErrNeedsForce   = "%s needs confirmation, run it from a terminal or pass --force"
	MsgErrConfigExists = "%s already exists, pass --force to replace it"
)

// Flag descriptions
const (
	MsgFlagVerbose     = "Increase verbosity (-v INFO, -vv DEBUG, -vvv TRACE)"
	MsgFlagBase        = "Application root (default: current directory)"
	MsgFlagStubs       = "Stub tree directory (default: <base>/stubs)"
	MsgFlagFormat      = "Output format: auto, term, text, json or yaml"
	MsgFlagNoOverwrite = "Skip existing files instead of replacing them"
	MsgFlagSkipEnv     = "Do not modify env files"
	MsgFlagKeepEnv     = "Keep package keys in env files"
	MsgFlagForce       = "Do not ask for confirmation"
	MsgFlagWrite       = "Write the configuration to <base>/.graft.toml"
)
