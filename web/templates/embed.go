// Package templates embute as views HTML no binário, para que o servidor e os
// testes rendem as páginas sem depender do diretório de trabalho.
package templates

import "embed"

//go:embed layouts pages
var FS embed.FS
