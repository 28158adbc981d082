package main

import (
	"fmt"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/guptarohit/asciigraph"
	"github.com/san-kum/molterm/internal/browse"
	"github.com/san-kum/molterm/internal/config"
	"github.com/san-kum/molterm/internal/parse"
	"github.com/san-kum/molterm/internal/structure"
	"github.com/san-kum/molterm/internal/view"
	"github.com/spf13/cobra"
)

var (
	size       float64
	modelNum   int
	chainID    string
	formatName string
	configFile string
	fps        int
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "molterm [file]",
		Short: "terminal viewer for macromolecular structures",
		Long: "molterm renders PDB and mmCIF structures as Braille dot art in the\n" +
			"terminal, with live keyboard control of rotation, panning and zoom.",
		Args: cobra.ExactArgs(1),
		RunE: runView,
	}
	rootCmd.PersistentFlags().Float64VarP(&size, "size", "s", config.DefaultSize, "view box size in angstroms (10-400)")
	rootCmd.PersistentFlags().IntVarP(&modelNum, "model", "m", 1, "model number to display")
	rootCmd.PersistentFlags().StringVarP(&chainID, "chain", "c", "", "restrict display to one chain")
	rootCmd.PersistentFlags().StringVarP(&formatName, "format", "f", "", "input format: pdb or mmcif (default: by extension)")
	rootCmd.Flags().StringVar(&configFile, "config", "", "config file path (yaml)")
	rootCmd.Flags().IntVar(&fps, "fps", config.DefaultFPS, "frame rate")

	infoCmd := &cobra.Command{
		Use:   "info [file]",
		Short: "print structure summary",
		Args:  cobra.ExactArgs(1),
		RunE:  runInfo,
	}

	chainsCmd := &cobra.Command{
		Use:   "chains [file]",
		Short: "list chains per model",
		Args:  cobra.ExactArgs(1),
		RunE:  runChains,
	}

	plotCmd := &cobra.Command{
		Use:   "plot [file]",
		Short: "plot per-residue mean B-factor",
		Args:  cobra.ExactArgs(1),
		RunE:  runPlot,
	}

	browseCmd := &cobra.Command{
		Use:   "browse [file]",
		Short: "interactively browse models, chains and residues",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := load(args[0])
			if err != nil {
				return err
			}
			return browse.Run(s)
		},
	}

	rootCmd.AddCommand(infoCmd, chainsCmd, plotCmd, browseCmd)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

func load(path string) (*structure.Structure, error) {
	format := parse.FormatUnknown
	if formatName != "" {
		var err error
		if format, err = parse.ParseFormat(formatName); err != nil {
			return nil, err
		}
	}
	return parse.ReadFile(path, format)
}

func runView(cmd *cobra.Command, args []string) error {
	cfg := config.DefaultConfig()
	if configFile != "" {
		loaded, err := config.Load(configFile)
		if err != nil {
			return fmt.Errorf("load config: %w", err)
		}
		cfg = loaded
	}
	// Flags override the config only when given on the command line.
	if cmd.Flags().Changed("size") {
		cfg.Size = size
	}
	if cmd.Flags().Changed("fps") {
		cfg.FPS = fps
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	s, err := load(args[0])
	if err != nil {
		return err
	}

	st, err := view.NewState(s, modelNum, chainID, cfg.Size)
	if err != nil {
		return err
	}

	term, err := view.NewTcellTerminal()
	if err != nil {
		return fmt.Errorf("open terminal: %w", err)
	}

	return view.Run(term, st, view.Options{
		Size: cfg.Size,
		FPS:  cfg.FPS,
		Speeds: view.Speeds{
			Rot:   cfg.RotSpeed,
			Trans: cfg.TransSpeed,
			Zoom:  cfg.ZoomSpeed,
			Spin:  cfg.SpinSpeed,
		},
	})
}

func runInfo(cmd *cobra.Command, args []string) error {
	s, err := load(args[0])
	if err != nil {
		return err
	}

	fmt.Printf("%s\n\n", s.Path)
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "MODEL\tCHAINS\tRESIDUES\tATOMS")
	for i := range s.Models {
		m := &s.Models[i]
		fmt.Fprintf(w, "%d\t%s\t%d\t%d\n",
			m.Num, strings.Join(m.ChainIDs(), ""), m.ResidueCount(), m.AtomCount())
	}
	return w.Flush()
}

func runChains(cmd *cobra.Command, args []string) error {
	s, err := load(args[0])
	if err != nil {
		return err
	}

	m := s.Model(modelNum)
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "CHAIN\tRESIDUES\tATOMS\tFIRST\tLAST")
	for i := range m.Chains {
		c := &m.Chains[i]
		first, last := "", ""
		if n := len(c.Residues); n > 0 {
			first = fmt.Sprintf("%s %d", c.Residues[0].Name, c.Residues[0].Num)
			last = fmt.Sprintf("%s %d", c.Residues[n-1].Name, c.Residues[n-1].Num)
		}
		fmt.Fprintf(w, "%s\t%d\t%d\t%s\t%s\n", c.ID, len(c.Residues), c.AtomCount(), first, last)
	}
	return w.Flush()
}

func runPlot(cmd *cobra.Command, args []string) error {
	s, err := load(args[0])
	if err != nil {
		return err
	}

	m := s.Model(modelNum)
	chains := m.Chains
	if chainID != "" {
		c := m.Chain(chainID)
		if c == nil {
			return fmt.Errorf("chain %q not found in model %d", chainID, m.Num)
		}
		chains = []structure.Chain{*c}
	}

	for i := range chains {
		c := &chains[i]
		data := make([]float64, 0, len(c.Residues))
		for _, r := range c.Residues {
			if len(r.Atoms) == 0 {
				continue
			}
			sum := 0.0
			for _, a := range r.Atoms {
				sum += a.BFactor
			}
			data = append(data, sum/float64(len(r.Atoms)))
		}
		if len(data) < 2 {
			continue
		}

		graph := asciigraph.Plot(data,
			asciigraph.Height(10),
			asciigraph.Width(80),
			asciigraph.Caption(fmt.Sprintf("chain %s mean B-factor per residue", c.ID)),
		)
		fmt.Println(graph)
		fmt.Println()
	}
	return nil
}
