package cmd

import (
	"errors"
	"os"

	"github.com/spf13/cobra"

	"fastcmd/internal/logger"
)

// debug flag indicates whether debug logging should be enabled.
// It can be toggled via the `--debug` command-line flag.
var debug bool

// configPath holds the path to the optional configuration YAML file.
var configPath string

// options collects every operation flag bound by init below. The dispatcher
// in run.go reads this one struct; nothing else touches the flag variables.
type options struct {
	Update     bool
	Upgrade    bool
	Autoremove bool
	Autoclean  bool
	Shutdown   bool

	Install        []string
	AutoInstall    []string
	Remove         []string
	Chmod          []string
	InstallDeb     []string
	InstallSnap    []string
	InstallFlatpak []string
	InstallPip     []string
	Github         []string
	GithubInstall  []string
	Download       []string
	InstallSource  []string

	GithubDir   string
	DownloadDir string
}

var opts options

// rootCmd is the whole CLI surface: a single command carrying the flat set of
// mutually independent operation flags. There are no subcommands because
// operations combine freely in one invocation.
var rootCmd = &cobra.Command{
	Use:   "fastcmd",
	Short: "Fast command prompt for system package management",
	Long: `fastcmd orchestrates the host's package-management and source-acquisition
tools (apt, dpkg, snap, flatpak, pip, git, wget/curl, make, cmake) behind one
flat flag surface. Every requested operation runs once, in a fixed order, and
a failing operation never stops the ones after it.`,
	Args:          cobra.NoArgs,
	SilenceUsage:  true,
	SilenceErrors: true,

	// PersistentPreRun is a hook that runs before the command body.
	// Here, we initialize the logger based on the debug flag.
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		logger.Init(debug)
	},

	RunE: run,
}

// init binds every flag. Short aliases longer than one character (-ud,
// -gh-install, ...) are not registered here; NormalizeArgs expands them to
// these long forms before parsing.
func init() {
	f := rootCmd.Flags()

	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "Enable debug logging")
	rootCmd.PersistentFlags().StringVar(&configPath, "config", defaultConfigPath, "Path to configuration file")

	f.BoolVar(&opts.Update, "update", false, "Update package list (apt update)")
	f.BoolVar(&opts.Upgrade, "upgrade", false, "Upgrade system packages (apt full-upgrade -y)")
	f.BoolVar(&opts.Autoremove, "autoremove", false, "Autoremove unnecessary packages (apt autoremove)")
	f.BoolVar(&opts.Autoclean, "autoclean", false, "Autoclean unnecessary packages (apt autoclean)")
	f.BoolVar(&opts.Shutdown, "shutdown", false, "Shutdown the system")

	f.StringArrayVar(&opts.Install, "install", nil, "Install package(s) (apt install)")
	f.StringArrayVar(&opts.AutoInstall, "auto-install", nil, "Auto install: update first, then install package(s)")
	f.StringArrayVar(&opts.Remove, "remove", nil, "Remove package(s) (apt remove)")
	f.StringArrayVar(&opts.Chmod, "chmod", nil, "Make file(s) executable (chmod +x)")
	f.StringArrayVar(&opts.InstallDeb, "install-deb", nil, "Install .deb package(s) (dpkg -i)")
	f.StringArrayVar(&opts.InstallSnap, "install-snap", nil, "Install snap package(s) (snap install)")
	f.StringArrayVar(&opts.InstallFlatpak, "install-flatpak", nil, "Install flatpak package(s) (flatpak install)")
	f.StringArrayVar(&opts.InstallPip, "install-pip", nil, "Install Python package(s) (pip3 install)")
	f.StringArrayVar(&opts.Github, "github", nil, "Clone repository from GitHub (git clone)")
	f.StringArrayVar(&opts.GithubInstall, "github-install", nil, "Clone and install from GitHub automatically")
	f.StringArrayVar(&opts.Download, "download", nil, "Download file(s) from URL (wget/curl)")
	f.StringArrayVar(&opts.InstallSource, "install-source", nil, "Install from source code directory")

	f.StringVar(&opts.GithubDir, "github-dir", "", "Directory for cloned repositories (default: ./repos)")
	f.StringVar(&opts.DownloadDir, "download-dir", "", "Directory for downloads (default: ./downloads)")
}

// Execute normalizes the raw arguments, runs the root command, and maps the
// outcome onto the process exit code: zero when every requested operation
// succeeded, one when any failed (or when nothing was requested).
func Execute() {
	rootCmd.SetArgs(NormalizeArgs(os.Args[1:]))
	if err := rootCmd.Execute(); err != nil {
		// The dispatcher already printed everything behind its sentinels;
		// anything else (flag parse errors, config errors) surfaces here.
		if !errors.Is(err, errNothingRequested) && !errors.Is(err, errTasksFailed) {
			logger.Error("[ERROR] %v\n", err)
		}
		os.Exit(1)
	}
}
