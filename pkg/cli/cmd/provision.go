package cmd

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/MunavvarSinan/node-docker-cli/pkg/cli/ui/asciiart"
	"github.com/MunavvarSinan/node-docker-cli/pkg/cli/ui/prompt"
	runtime "github.com/MunavvarSinan/node-docker-cli/pkg/di"
	"github.com/MunavvarSinan/node-docker-cli/pkg/io/configmanager"
	projectprovisioner "github.com/MunavvarSinan/node-docker-cli/pkg/svc/provisioner/project"
	"github.com/MunavvarSinan/node-docker-cli/pkg/utils/notify"
	"github.com/MunavvarSinan/node-docker-cli/pkg/utils/timer"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

// newProvisionHandler returns the root command's handler: load options, wire the
// provisioner from the injector and run it.
func newProvisionHandler(
	cfgManager *configmanager.ConfigManager,
	settings *rootSettings,
) func(cmd *cobra.Command, injector runtime.Injector, tmr timer.Timer) error {
	return func(cmd *cobra.Command, injector runtime.Injector, tmr timer.Timer) error {
		tmr.Start()

		log, err := runtime.ResolveLogger(injector)
		if err != nil {
			return err
		}

		log.SetOutput(cmd.ErrOrStderr())

		if verbose, _ := cmd.Flags().GetBool(VerboseFlagName); verbose {
			log.SetLevel(logrus.DebugLevel)
		}

		if configFile, _ := cmd.Flags().GetString(ConfigFlagName); configFile != "" {
			cfgManager.SetConfigFile(configFile)
		}

		options, err := cfgManager.Load()
		if err != nil {
			return err
		}

		log.WithFields(logrus.Fields{
			"preset":      options.Preset,
			"config_file": cfgManager.ConfigFileUsed(),
			"template":    options.Template,
		}).Debug("options loaded")

		commandRunner, err := runtime.ResolveCommandRunner(injector)
		if err != nil {
			return err
		}

		osOpener, err := runtime.ResolveOpener(injector)
		if err != nil {
			return err
		}

		out := notify.NewStageSeparatingWriter(cmd.OutOrStdout())

		var spinnerOpts []notify.SpinnerOption
		if timing, _ := cmd.Flags().GetBool(TimingFlagName); timing {
			spinnerOpts = append(spinnerOpts, notify.WithSpinnerTimer(tmr))
		}

		provisionerOpts := []projectprovisioner.Option{projectprovisioner.WithWorkDir(settings.workDir)}
		if settings.banner {
			provisionerOpts = append(provisionerOpts, projectprovisioner.WithBanner(asciiart.PrintLogo))
		}

		provisioner := projectprovisioner.NewProvisioner(
			*options,
			projectprovisioner.Dependencies{
				Runner:   commandRunner,
				Prompter: prompt.NewTerminalPrompter(cmd.InOrStdin(), out),
				Reporter: notify.NewSpinner(out, spinnerOpts...),
				Opener:   osOpener,
				Writer:   out,
				Log:      log,
			},
			provisionerOpts...,
		)

		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		err = provisioner.Run(ctx, cmd.Flags().Args())

		log.WithField("outcome", projectprovisioner.OutcomeOf(err).String()).Debug("provisioning finished")

		return err
	}
}
