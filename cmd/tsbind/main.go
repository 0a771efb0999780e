// Copyright (c) 2026 Khramtsov Aleksei (seniorGolang@gmail.com).
// conditions defined in file 'LICENSE', which is part of this project source code.

// Command tsbind renders TypeScript declarations from component interface
// models.
//
// Usage:
//
//	tsbind generate [flags] [model files...]
//	tsbind inspect <model file>
//	tsbind config show
//	tsbind version
package main

import (
	"os"
)

func main() {
	os.Exit(Execute())
}
