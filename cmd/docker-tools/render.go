// Copyright 2021 Harald Albrecht.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//    http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package main

import (
	"io"

	"github.com/charmbracelet/lipgloss"
	"github.com/olekukonko/tablewriter"

	dockertools "github.com/srevenant/practical-docker-tools"
	"github.com/srevenant/practical-docker-tools/engineclient/cli"
)

// column maps a record field to a table column.
type column struct {
	Header string
	Field  string
}

var commandStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("2"))

// renderRecords renders the records as a table with the specified columns,
// ordered by the sort field. The short ID column falls back to the full ID in
// case there is no short ID.
func renderRecords(w io.Writer, records dockertools.Records, sortfield string, columns []column) {
	table := tablewriter.NewWriter(w)
	headers := make([]string, len(columns))
	for idx, col := range columns {
		headers[idx] = col.Header
	}
	table.SetHeader(headers)
	table.SetAutoWrapText(false)
	table.SetBorder(false)
	table.SetColumnSeparator("")
	table.SetHeaderLine(false)
	for _, rec := range records.Sorted(sortfield) {
		line := make([]string, len(columns))
		for idx, col := range columns {
			value := rec.Get(col.Field)
			if col.Field == dockertools.FieldShortID && value == "" {
				value = rec.ID
			}
			line[idx] = value
		}
		table.Append(line)
	}
	table.Render()
}

// echoCommand shows the command line about to be run, unless disabled.
func echoCommand(w io.Writer, color bool, argv []string) {
	line := ">>> " + cli.CommandLine(argv[0], argv[1:]...)
	if color {
		line = commandStyle.Render(line)
	}
	_, _ = io.WriteString(w, line+"\n")
}
