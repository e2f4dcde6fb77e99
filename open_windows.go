//go:build windows

package mdpress

func defaultOpenCommand(path string) Command {
	return Command{Tool: "rundll32", Args: []string{"url.dll,FileProtocolHandler", path}, Input: path}
}
