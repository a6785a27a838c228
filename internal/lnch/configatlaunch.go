//    ThemataGoEngine
//    Copyright: P Themelis 2025-26
//    License: GNU GENERAL PUBLIC LICENSE 3
//        (see LICENSE in the top level directory of the distribution)

package lnch

import (
	"fmt"
	"os"
	"runtime"
	"strconv"

	"gopkg.in/yaml.v3"

	"github.com/p-themelis/ThemataGoEngine/internal/vv"
)

// CurrentConfiguration - the full launch-time surface: the engine knobs from
// the yaml file plus the wrapper-only settings (input/output, graphing)
type CurrentConfiguration struct {
	Input      string   `yaml:"input"`      // json-lines token file
	OutDir     string   `yaml:"outdir"`     // where report artifacts land
	MinDocFreq float64  `yaml:"mindocfreq"` // >= 1 absolute; (0, 1) fraction
	MaxDocFreq float64  `yaml:"maxdocfreq"` // 0 = unbounded
	KTopics    int      `yaml:"ktopics"`    // k for the final fit
	KFloor     int      `yaml:"kfloor"`     // sweep range
	KCeil      int      `yaml:"kceil"`
	Metrics    []string `yaml:"metrics"`
	Iterations int      `yaml:"iterations"`
	BurnIn     int      `yaml:"burnin"`
	Alpha      float64  `yaml:"alpha"`
	Eta        float64  `yaml:"eta"`
	Seed       uint64   `yaml:"seed"`
	Clusters   int      `yaml:"clusters"` // 0 = same as KTopics
	TopTerms   int      `yaml:"topterms"`
	Workers    int      `yaml:"workers"`
	LogLevel   int      `yaml:"loglevel"`
	Sweep      bool     `yaml:"sweep"`   // run the k-selection sweep first
	Graph      bool     `yaml:"graph"`   // write the scatter page
	TSNE       bool     `yaml:"tsne"`    // t-SNE instead of PCA in the graph
	Profile    bool     `yaml:"profile"` // cpu profiling via pkg/profile
}

// BuildDefaultConfig - the stock settings
func BuildDefaultConfig() CurrentConfiguration {
	return CurrentConfiguration{
		OutDir:     ".",
		MinDocFreq: vv.DEFAULTMINDOCFREQ,
		MaxDocFreq: vv.DEFAULTMAXDOCFREQ,
		KTopics:    vv.DEFAULTTOPICCOUNT,
		KFloor:     vv.DEFAULTKFLOOR,
		KCeil:      vv.DEFAULTKCEIL,
		Metrics:    vv.MetricNames,
		Iterations: vv.DEFAULTITERATIONS,
		BurnIn:     vv.DEFAULTBURNIN,
		Alpha:      vv.DEFAULTALPHA,
		Eta:        vv.DEFAULTETA,
		Seed:       vv.DEFAULTSEED,
		TopTerms:   vv.DEFAULTTOPTERMS,
		Workers:    runtime.NumCPU(),
		LogLevel:   vv.DEFAULTLOGLEVEL,
	}
}

// ConfigAtLaunch - defaults, then the yaml config file, then the command line
func ConfigAtLaunch() CurrentConfiguration {
	const (
		FAIL1 = "could not parse '%s': %v\n"
		FAIL2 = "'%s' wants an integer argument\n"
		FAIL3 = "'%s' wants a numeric argument\n"
	)

	cfg := BuildDefaultConfig()

	cf := fmt.Sprintf("%s/%s", vv.CONFIGLOCATION, vv.CONFIGBASIC)

	args := os.Args[1:]

	// a "-cf" has to win before the file is read
	for i, a := range args {
		if a == "-cf" && i+1 < len(args) {
			cf = args[i+1]
		}
	}

	if raw, e := os.ReadFile(cf); e == nil {
		if e = yaml.Unmarshal(raw, &cfg); e != nil {
			fmt.Printf(FAIL1, cf, e)
			os.Exit(1)
		}
	}

	needint := func(i int, a string) int {
		if i+1 >= len(args) {
			fmt.Printf(FAIL2, a)
			os.Exit(1)
		}
		n, e := strconv.Atoi(args[i+1])
		if e != nil {
			fmt.Printf(FAIL2, a)
			os.Exit(1)
		}
		return n
	}

	needuint := func(i int, a string) uint64 {
		if i+1 >= len(args) {
			fmt.Printf(FAIL2, a)
			os.Exit(1)
		}
		// ParseUint and not Atoi: "-sd -1" must fail, not wrap around
		n, e := strconv.ParseUint(args[i+1], 10, 64)
		if e != nil {
			fmt.Printf(FAIL2, a)
			os.Exit(1)
		}
		return n
	}

	needfloat := func(i int, a string) float64 {
		if i+1 >= len(args) {
			fmt.Printf(FAIL3, a)
			os.Exit(1)
		}
		f, e := strconv.ParseFloat(args[i+1], 64)
		if e != nil {
			fmt.Printf(FAIL3, a)
			os.Exit(1)
		}
		return f
	}

	for i, a := range args {
		switch a {
		case "-v":
			fmt.Println(vv.VERSION)
			os.Exit(0)
		case "-h":
			fmt.Println(HELPTEXT)
			os.Exit(0)
		case "-cf":
			// already handled
		case "-in":
			if i+1 < len(args) {
				cfg.Input = args[i+1]
			}
		case "-od":
			if i+1 < len(args) {
				cfg.OutDir = args[i+1]
			}
		case "-kt":
			cfg.KTopics = needint(i, a)
		case "-kf":
			cfg.KFloor = needint(i, a)
		case "-kc":
			cfg.KCeil = needint(i, a)
		case "-it":
			cfg.Iterations = needint(i, a)
		case "-bi":
			cfg.BurnIn = needint(i, a)
		case "-al":
			cfg.Alpha = needfloat(i, a)
		case "-et":
			cfg.Eta = needfloat(i, a)
		case "-sd":
			cfg.Seed = needuint(i, a)
		case "-cl":
			cfg.Clusters = needint(i, a)
		case "-tt":
			cfg.TopTerms = needint(i, a)
		case "-wc":
			cfg.Workers = needint(i, a)
		case "-gl":
			cfg.LogLevel = needint(i, a)
		case "-sw":
			cfg.Sweep = true
		case "-gr":
			cfg.Graph = true
		case "-ts":
			cfg.TSNE = true
		case "-pp":
			cfg.Profile = true
		}
	}

	if cfg.Clusters == 0 {
		cfg.Clusters = cfg.KTopics
	}

	return cfg
}

const HELPTEXT = `ThemataGoEngine: topic modeling for a tokenized corpus

  -in  <file>   json-lines input: one array of token strings per line
  -od  <dir>    output directory (default '.')
  -cf  <file>   yaml configuration file (default './tge-conf.yaml')
  -kt  <int>    topics for the final fit
  -sw           sweep candidate topic counts and print the metric table
  -kf  <int>    sweep floor
  -kc  <int>    sweep ceiling
  -it  <int>    gibbs sweeps
  -bi  <int>    burn-in sweeps to discard
  -al  <float>  dirichlet alpha
  -et  <float>  dirichlet eta
  -sd  <uint>   random seed
  -cl  <int>    k-means cluster count (default: same as -kt)
  -tt  <int>    terms listed per topic
  -wc  <int>    sweep worker count
  -gl  <int>    log level (-1 .. 5)
  -gr           write an html scatter of the 2d projection
  -ts           use t-SNE instead of PCA for the scatter
  -pp           cpu profiling
  -v            print version and exit
  -h            this`
