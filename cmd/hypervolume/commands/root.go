package commands

import (
	"flag"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"k8s.io/klog/v2"

	"github.com/moo-lab/hypervolume/apis/config"
	"github.com/moo-lab/hypervolume/apis/config/v1alpha1"
	"github.com/moo-lab/hypervolume/pkg/multiobjective/indicators"
)

// options holds the flags shared by every sub-command.
type options struct {
	configPath     string
	referencePoint []float64
	referenceFront string
	offset         float64
	indicators     []string
}

func Execute() error {
	return NewRootCommand().Execute()
}

// NewRootCommand builds the hypervolume command tree.
func NewRootCommand() *cobra.Command {
	o := &options{}
	root := &cobra.Command{
		Use:          "hypervolume",
		Short:        "Score Pareto front approximations with quality indicators",
		SilenceUsage: true,
	}

	fs := root.PersistentFlags()
	fs.StringVar(&o.configPath, "config", "", "IndicatorConfiguration file; flags override its fields")
	fs.Float64SliceVar(&o.referencePoint, "ref", nil, "hypervolume reference point, e.g. 1.1,1.1")
	fs.StringVar(&o.referenceFront, "reference-front", "", "reference front file")
	fs.Float64Var(&o.offset, "offset", 0, "offset added to a reference point derived from the reference front")
	fs.StringSliceVar(&o.indicators, "indicators", nil, "indicators to compute (HV, EPSILON, GD, IGD), default HV")
	addKlogFlags(fs)

	root.AddCommand(computeCmd(o), contributionsCmd(o), listCmd())
	return root
}

func addKlogFlags(fs *pflag.FlagSet) {
	local := flag.NewFlagSet("klog", flag.ContinueOnError)
	klog.InitFlags(local)
	fs.AddGoFlagSet(local)
}

// configuration merges the --config file with the flags set on cmd.
func (o *options) configuration(cmd *cobra.Command) (*v1alpha1.IndicatorConfiguration, error) {
	cfg := &v1alpha1.IndicatorConfiguration{}
	if o.configPath != "" {
		loaded, err := config.Load(o.configPath)
		if err != nil {
			return nil, err
		}
		cfg = loaded
	}

	flags := cmd.Flags()
	if flags.Changed("ref") {
		cfg.ReferencePoint = o.referencePoint
	}
	if flags.Changed("reference-front") {
		cfg.ReferenceFrontFile = o.referenceFront
	}
	if flags.Changed("offset") {
		offset := o.offset
		cfg.Offset = &offset
	}
	if flags.Changed("indicators") {
		cfg.Indicators = o.indicators
	}

	v1alpha1.SetDefaults_IndicatorConfiguration(cfg)
	if err := config.Validate(cfg); err != nil {
		return nil, err
	}
	klog.V(4).InfoS("resolved configuration", "referencePoint", cfg.ReferencePoint, "referenceFrontFile", cfg.ReferenceFrontFile, "indicators", cfg.Indicators)
	return cfg, nil
}

// build instantiates the configured indicators in order.
func build(cfg *v1alpha1.IndicatorConfiguration) ([]indicators.Indicator, error) {
	kinds, err := config.Kinds(cfg)
	if err != nil {
		return nil, err
	}
	ref, err := config.Reference(cfg)
	if err != nil {
		return nil, err
	}
	built := make([]indicators.Indicator, 0, len(kinds))
	for _, kind := range kinds {
		ind, err := indicators.New(kind, ref)
		if err != nil {
			return nil, fmt.Errorf("configuring indicators: %w", err)
		}
		built = append(built, ind)
	}
	return built, nil
}
