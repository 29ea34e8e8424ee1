package cli

import (
	"context"
	"encoding/json"
	"os"
	"strings"

	"github.com/alexflint/go-arg"
	"github.com/arkane-systems/arkane-fileproperties-dss/dss"
	"github.com/arkane-systems/arkane-fileproperties-dss/dss/dheader"
	"github.com/arkane-systems/arkane-fileproperties-dss/ui"
	"github.com/iancoleman/orderedmap"
	"github.com/olekukonko/tablewriter"
	"github.com/samber/lo"
)

type (
	Args struct {
		Info        *InfoCmd        `arg:"subcommand:info"`
		Interactive *InteractiveCmd `arg:"subcommand:interactive"`
	}
	InteractiveCmd struct{}
	InfoCmd        struct {
		Files []string `arg:"positional,required" help:"paths to DSS files" placeholder:"recording.dss"`
		JSON  bool     `help:"print one JSON object keyed by file path"`
	}
)

func (Args) Description() string {
	des := strings.Join(
		[]string{
			"Every dictation leaves a trail.\n",
			"A CLI utility to read the header of DSS (Digital Speech Standard,",
			"the dictation recorders' proprietary audio format) files: creation",
			"and completion timestamps, recording length, and the embedded comment.",
		},
		"\n",
	)
	des += "\n"
	return des
}

func headerRow(header *dheader.Header) []string {
	return []string{
		header.PathName,
		header.CreatedOn.Format("2006-01-02 15:04:05"),
		header.CompletedOn.Format("2006-01-02 15:04:05"),
		dss.FormatLength(header.Length),
		header.Comments,
	}
}

func StartInfo(paths []string, asJSON bool) {
	headers, err := dss.DecodeFiles(context.Background(), paths)
	if err != nil {
		println("Error happened decoding DSS header: " + err.Error())
		return
	}

	if asJSON {
		lhm := orderedmap.New()
		for i, header := range headers {
			lhm.Set(paths[i], dss.ToLinkedHashMap(*header))
		}
		bs, err := json.MarshalIndent(lhm, "", "  ")
		if err != nil {
			println("Error happened rendering headers to JSON: " + err.Error())
			return
		}
		println(string(bs))
		return
	}

	table := tablewriter.NewWriter(os.Stdout)
	table.SetHeader([]string{"File", "Created", "Completed", "Length", "Comments"})
	lo.ForEach(
		headers,
		func(header *dheader.Header, _ int) {
			table.Append(headerRow(header))
		},
	)
	table.Render()
}

func Start() {
	args := Args{}
	arg.MustParse(&args)

	if (args.Interactive == nil && args.Info == nil) ||
		args.Interactive != nil {
		ui.Start()
	} else {
		StartInfo(args.Info.Files, args.Info.JSON)
	}
}
