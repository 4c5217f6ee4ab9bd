// Package fixture implements the test-file generator for the copyright
// notice extension. It owns the fixed fixture catalog, the settings
// document the extension consumes, and the generator that stamps both
// into an output directory.
//
// The catalog is deliberately a flat list of literals rather than
// templates: the whole point of these files is byte-stable input for
// manual testing of the extension, so nothing here is derived.
package fixture

// Category groups fixtures by the language or format they represent.
type Category string

const (
	CategoryJavaScript Category = "JavaScript"
	CategoryTypeScript Category = "TypeScript"
	CategoryAutoHotkey Category = "AutoHotkey"
	CategoryPython     Category = "Python"
	CategoryCPP        Category = "C++"
	CategoryJSON       Category = "JSON"
	CategoryMixed      Category = "Mixed"
)

// Spec is one entry of the fixture catalog: a filename, its exact byte
// content, and a human-readable description used in progress output.
type Spec struct {
	Filename    string
	Content     string
	Description string
	Category    Category
}

// categoryBanners holds the progress line announcing each category, in
// generation order.
var categoryBanners = []struct {
	Category Category
	Banner   string
}{
	{CategoryJavaScript, "Generating JavaScript test files..."},
	{CategoryTypeScript, "Generating TypeScript test files..."},
	{CategoryAutoHotkey, "Generating AutoHotkey test files..."},
	{CategoryPython, "Generating Python test files..."},
	{CategoryCPP, "Generating C++ test files..."},
	{CategoryJSON, "Generating JSON files (should be excluded)..."},
	{CategoryMixed, "Generating mixed content files..."},
}

// catalog holds every generated source fixture in emission order.
// test_settings.json and README.md are produced separately because their
// progress lines differ (no character count).
var catalog = []Spec{
	{
		Filename:    "basic.js",
		Content:     "function hello() {\n    console.log('Hello, World!');\n}\n",
		Description: "Basic JS without copyright notice",
		Category:    CategoryJavaScript,
	},
	{
		Filename:    "with_copyright.js",
		Content:     "/**\n * Copyright (c) 2023 Test Company\n * All rights reserved.\n */\n\nfunction hello() {\n    console.log('Hello, World!');\n}\n",
		Description: "JS with existing copyright notice",
		Category:    CategoryJavaScript,
	},
	{
		Filename:    "different_copyright.js",
		Content:     "/* Copyright (c) 2023 Another Company */\n\nfunction hello() {\n    console.log('Hello, World!');\n}\n",
		Description: "JS with different copyright format",
		Category:    CategoryJavaScript,
	},
	{
		Filename:    "basic.ts",
		Content:     "interface User {\n    name: string;\n    age: number;\n}\n\nfunction greet(user: User): string {\n    return `Hello, ${user.name}!`;\n}\n",
		Description: "Basic TypeScript without copyright notice",
		Category:    CategoryTypeScript,
	},
	{
		Filename:    "with_copyright.ts",
		Content:     "/**\n * Copyright (c) 2023 TypeScript Company\n * Created: 2023-01-01 12:00:00\n * Last Updated: 2023-01-15 14:30:00\n */\n\ninterface User {\n    name: string;\n    age: number;\n}\n",
		Description: "TypeScript with existing copyright and timestamps",
		Category:    CategoryTypeScript,
	},
	{
		Filename:    "basic.ahk",
		Content:     "F1::\n    MsgBox, Hello World!\nreturn\n\nF2::\n    Send, Hello from AutoHotkey!\nreturn\n",
		Description: "Basic AutoHotkey without copyright notice",
		Category:    CategoryAutoHotkey,
	},
	{
		Filename:    "basic.ahk2",
		Content:     "F1:: {\n    MsgBox('Hello World!')\n}\n\nF2:: {\n    Send('Hello from AutoHotkey v2!')\n}\n",
		Description: "AutoHotkey v2 without copyright notice",
		Category:    CategoryAutoHotkey,
	},
	{
		Filename:    "with_copyright.ahk",
		Content:     "/*\n * Copyright (c) 2023 AHK Company\n * All rights reserved.\n */\n\nF1::\n    MsgBox, Hello World!\nreturn\n",
		Description: "AutoHotkey with existing copyright notice",
		Category:    CategoryAutoHotkey,
	},
	{
		Filename:    "basic.py",
		Content:     "def hello():\n    print('Hello, World!')\n\nif __name__ == '__main__':\n    hello()\n",
		Description: "Basic Python without copyright notice",
		Category:    CategoryPython,
	},
	{
		Filename:    "with_copyright.py",
		Content:     "# Copyright (c) 2023 Python Company\n# All rights reserved.\n\ndef hello():\n    print('Hello, World!')\n",
		Description: "Python with existing copyright notice",
		Category:    CategoryPython,
	},
	{
		Filename:    "basic.cpp",
		Content:     "#include <iostream>\n\nint main() {\n    std::cout << \"Hello, World!\" << std::endl;\n    return 0;\n}\n",
		Description: "Basic C++ without copyright notice",
		Category:    CategoryCPP,
	},
	{
		Filename:    "basic.h",
		Content:     "#ifndef BASIC_H\n#define BASIC_H\n\nclass Basic {\npublic:\n    void hello();\n};\n\n#endif\n",
		Description: "Basic C++ header without copyright notice",
		Category:    CategoryCPP,
	},
	{
		Filename:    "config.json",
		Content:     "{\n    \"name\": \"test\",\n    \"version\": \"1.0.0\",\n    \"description\": \"Test configuration\"\n}\n",
		Description: "JSON config file (should be excluded)",
		Category:    CategoryJSON,
	},
	{
		Filename:    "package.json",
		Content:     "{\n    \"name\": \"test-package\",\n    \"version\": \"1.0.0\",\n    \"description\": \"Test package\"\n}\n",
		Description: "JSON package file (should be excluded)",
		Category:    CategoryJSON,
	},
	{
		Filename:    "basic.html",
		Content:     "<!DOCTYPE html>\n<html>\n<head>\n    <title>Test Page</title>\n</head>\n<body>\n    <h1>Hello World</h1>\n</body>\n</html>\n",
		Description: "Basic HTML without copyright notice",
		Category:    CategoryMixed,
	},
	{
		Filename:    "basic.css",
		Content:     "body {\n    font-family: Arial, sans-serif;\n    margin: 0;\n    padding: 20px;\n}\n\nh1 {\n    color: #333;\n}\n",
		Description: "Basic CSS without copyright notice",
		Category:    CategoryMixed,
	},
	{
		Filename:    "basic.sh",
		Content:     "#!/bin/bash\n\necho \"Hello, World!\"\n\nexit 0\n",
		Description: "Basic shell script without copyright notice",
		Category:    CategoryMixed,
	},
}

// Catalog returns a copy of the full fixture catalog in emission order.
func Catalog() []Spec {
	out := make([]Spec, len(catalog))
	copy(out, catalog)
	return out
}

// Categories returns the category emission order.
func Categories() []Category {
	out := make([]Category, 0, len(categoryBanners))
	for _, cb := range categoryBanners {
		out = append(out, cb.Category)
	}
	return out
}

// Banner returns the progress banner for a category, or "" if unknown.
func Banner(c Category) string {
	for _, cb := range categoryBanners {
		if cb.Category == c {
			return cb.Banner
		}
	}
	return ""
}

// ByCategory returns the catalog entries of one category, in order.
func ByCategory(c Category) []Spec {
	var out []Spec
	for _, s := range catalog {
		if s.Category == c {
			out = append(out, s)
		}
	}
	return out
}
