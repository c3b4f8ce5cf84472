/*
Copyright © 2025 Valentyn Solomko <valentyn.solomko@gmail.com>

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

	http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/
package cmd

import (
	"strings"

	"github.com/valpere/gtran/internal/languages"
)

const helpHeader = `
To translate something using Google Translate, use the format
` + "`gtran -i <input_language> -o <output_language> <text to translate>`" + `.

You may also provide the input language with the environment variable GT_INPUT_LANGUAGE
and output language with environment variable GT_OUTPUT_LANGUAGE.

This requires an environment variable GOOGLE_ACCESS_KEY which can be retrieved with ` + "`gcloud auth application-default print-access-token`" + `

The allowed languages are:

`

// helpText renders the usage page: invocation format, environment variables,
// and the full language table.
func helpText() string {
	var sb strings.Builder
	sb.WriteString(helpHeader)
	sb.WriteString(languages.Listing())
	return sb.String()
}
