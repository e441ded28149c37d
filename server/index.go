package server

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

const indexHTML = `<!DOCTYPE html>
<html lang="en">
<head><meta charset="utf-8"><title>terrapath</title></head>
<body>
<h1>terrapath</h1>
<p>Cost-weighted grid routing. POST label grids to <code>/api/v1/routes</code>.</p>
<table id="classes">
<thead><tr><th>id</th><th>class</th><th>cost</th><th>passable</th></tr></thead>
<tbody>
{{- range .Classes}}
<tr data-class="{{.Name}}"><td class="id">{{.ID}}</td><td class="name">{{.Name}}</td><td class="cost">{{.Cost}}</td><td class="passable">{{if .Impassable}}no{{else}}yes{{end}}</td></tr>
{{- end}}
</tbody>
</table>
<p>Search: {{.Conn}}-connected, diagonal scaling {{.Scale}}.</p>
</body>
</html>
`

func (s *Server) handleIndex(c *gin.Context) {
	c.HTML(http.StatusOK, "index", gin.H{
		"Classes": s.classList(),
		"Conn":    s.opts.Conn.String(),
		"Scale":   s.opts.ScaleDiagonal,
	})
}
