package fixture

import "encoding/json"

// SettingsFilename is the name of the settings document inside the
// output directory.
const SettingsFilename = "test_settings.json"

// SettingsDocument mirrors the VS Code settings the copyright notice
// extension reads. Field order fixes the serialized key order, which the
// idempotence guarantee depends on.
type SettingsDocument struct {
	FileExtensions    []string `json:"copyright-notice.fileExtensions"`
	ExcludedFiles     []string `json:"copyright-notice.excludedFiles"`
	Template          string   `json:"copyright-notice.template"`
	IncludeTimestamp  bool     `json:"copyright-notice.includeTimestamp"`
	TimestampFormat   string   `json:"copyright-notice.timestampFormat"`
	IncludeUpdateTime bool     `json:"copyright-notice.includeUpdateTime"`
	UpdateTimeFormat  string   `json:"copyright-notice.updateTimeFormat"`
}

// DefaultSettings returns the settings document shipped with the test
// files. The extension list deliberately includes .ahk2 so language-ID
// handling can be exercised.
func DefaultSettings() SettingsDocument {
	return SettingsDocument{
		FileExtensions: []string{
			".js", ".jsx", ".ts", ".tsx", ".py", ".cpp", ".h", ".ahk", ".ahk2",
		},
		ExcludedFiles: []string{
			"*.json", "*.config.js", "package.json", "tsconfig.json",
		},
		Template:          "/**\n * Copyright (c) {year} Test Company\n * All rights reserved.\n */\n\n",
		IncludeTimestamp:  true,
		TimestampFormat:   "YYYY-MM-DD HH:mm:ss",
		IncludeUpdateTime: true,
		UpdateTimeFormat:  "YYYY-MM-DD HH:mm:ss",
	}
}

// Marshal renders the document as 4-space-indented JSON, the exact byte
// form written to disk.
func (s SettingsDocument) Marshal() ([]byte, error) {
	return json.MarshalIndent(s, "", "    ")
}
