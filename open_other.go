//go:build !darwin && !windows

package mdpress

func defaultOpenCommand(path string) Command {
	return Command{Tool: "xdg-open", Args: []string{path}, Input: path}
}
