package ui

import (
	"io/fs"
	"io/ioutil"
	"log"
	"os"
	"strings"

	"github.com/arkane-systems/arkane-fileproperties-dss/dss"
	"github.com/arkane-systems/arkane-fileproperties-dss/dss/dheader"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/pkg/errors"
	"github.com/samber/lo"
)

type (
	FileName     string
	FileSelector struct {
		cwd       string
		fileNames []FileName
		cursor    int
		header    *dheader.Header
		decodeErr error
	}
)

func CreateFileSelector() FileSelector {
	cwd, err := os.Getwd()
	if err != nil {
		err := errors.Wrap(err, "CreateFileSelector get current working directory error")
		log.Panic(err)
	}
	return FileSelector{
		cwd:       cwd,
		fileNames: ReadDSSFileNames(cwd),
		cursor:    0,
	}
}

func ReadDSSFileNames(path string) []FileName {
	files, err := ioutil.ReadDir(path)
	if err != nil {
		log.Fatal(err)
	}

	fileNames := lo.FilterMap(
		files,
		func(t fs.FileInfo, _ int) (FileName, bool) {
			name := t.Name()
			ok := !t.IsDir() && strings.HasSuffix(strings.ToLower(name), ".dss")
			return FileName(name), ok
		},
	)
	return fileNames
}

func (s FileSelector) Init() tea.Cmd {
	return nil
}

func (s FileSelector) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return s, nil
	}

	switch keyMsg.String() {
	case "ctrl+c", "q":
		return s, tea.Quit
	case "up", "k":
		if s.cursor > 0 {
			s.cursor--
		}
	case "down", "j":
		if s.cursor < len(s.fileNames)-1 {
			s.cursor++
		}
	case "enter":
		if len(s.fileNames) == 0 {
			break
		}
		s.header, s.decodeErr = dss.DecodeFile(string(s.fileNames[s.cursor]))
	}
	return s, nil
}

func (s FileSelector) View() string {
	output := "DSS FILE PROPERTIES\n\n"
	output += "Current directory: " + s.cwd + "\n\n"

	if len(s.fileNames) == 0 {
		output += "No .dss files here. Please start again in a folder that has some.\n"
		output += "\nPress q to quit.\n"
		return output
	}

	for i, fileName := range s.fileNames {
		cursor := "  "
		if i == s.cursor {
			cursor = "> "
		}
		output += cursor + string(fileName) + "\n"
	}
	output += "\n" + s.viewHeader()
	output += "\nPress enter to read a header; press q to quit.\n"

	return output
}

func (s FileSelector) viewHeader() string {
	switch {
	case s.decodeErr != nil:
		return "Error happened reading the header: " + s.decodeErr.Error() + "\n"
	case s.header != nil:
		return strings.Join(
			[]string{
				"File:      " + s.header.PathName,
				"Created:   " + s.header.CreatedOn.Format("2006-01-02 15:04:05"),
				"Completed: " + s.header.CompletedOn.Format("2006-01-02 15:04:05"),
				"Length:    " + dss.FormatLength(s.header.Length),
				"Comments:  " + s.header.Comments,
			},
			"\n",
		) + "\n"
	default:
		return ""
	}
}
