//go:build darwin

package mdpress

func defaultOpenCommand(path string) Command {
	return Command{Tool: "open", Args: []string{path}, Input: path}
}
