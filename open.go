package mdpress

// PrimaryExtension picks the file opened after a build. EPUB wins over TeX,
// which wins over PDF; with none of those requested the input itself is
// opened.
func PrimaryExtension(cfg BuildConfig) string {
	for _, f := range []Format{FormatEPUB, FormatTeX, FormatPDF} {
		if cfg.Has(f) {
			return f.Extension()
		}
	}
	_, ext := SplitExt(cfg.InputPath)
	return ext
}

// OpenCommand returns the invocation opening path with the OS default
// application, or with tool when it is set.
func OpenCommand(tool, path string) Command {
	if tool != "" {
		return Command{Tool: tool, Args: []string{path}, Input: path}
	}
	return defaultOpenCommand(path)
}
