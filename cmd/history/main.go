package main

import (
	"flag"
	"fmt"
	"html/template"
	"log"
	"net/http"
	"os"
	"path/filepath"
	"text/tabwriter"
	"time"

	"github.com/trytobebee/gridsnake/pkg/config"
	"github.com/trytobebee/gridsnake/pkg/recorder"
)

var indexTmpl = template.Must(template.New("index").Parse(`
<!DOCTYPE html>
<html>
<head>
    <title>Grid Snake History</title>
    <style>
        body { font-family: monospace; background: #1a202c; color: #fff; padding: 2rem; }
        h1 { color: #48bb78; }
        table { border-collapse: collapse; }
        td, th { padding: 0.4rem 1rem; border-bottom: 1px solid #4a5568; text-align: left; }
        .meta { color: #a0aec0; font-size: 0.9em; }
    </style>
</head>
<body>
    <h1>Round History</h1>
    {{range .}}
    <h2>{{.File.Name}}</h2>
    <div class="meta">{{.File.Size}} bytes | {{.File.Time.Format "2006-01-02 15:04:05"}}</div>
    <table>
        <tr><th>Session</th><th>Rounds</th><th>Best</th><th>Average</th><th>Longest</th><th>Play time</th></tr>
        {{range .Sessions}}
        <tr><td>{{.Session}}</td><td>{{.Rounds}}</td><td>{{.Best}}</td><td>{{printf "%.1f" .Average}}</td><td>{{.Longest}}</td><td>{{.PlayTime}}</td></tr>
        {{end}}
    </table>
    {{else}}
    <p>No recordings found.</p>
    {{end}}
</body>
</html>`))

type fileReport struct {
	File     recorder.File
	Sessions []recorder.Summary
}

func load(dir string) ([]fileReport, error) {
	files, err := recorder.List(dir)
	if err != nil {
		return nil, err
	}
	reports := make([]fileReport, 0, len(files))
	for _, f := range files {
		entries, err := recorder.ReadFile(filepath.Join(dir, f.Name))
		if err != nil {
			log.Printf("Failed to read %s: %v", f.Name, err)
			continue
		}
		reports = append(reports, fileReport{File: f, Sessions: recorder.Summarize(entries)})
	}
	return reports, nil
}

func printReports(reports []fileReport) {
	if len(reports) == 0 {
		fmt.Println("No recordings found.")
		return
	}
	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "FILE\tSESSION\tROUNDS\tBEST\tAVG\tLONGEST\tPLAY TIME")
	for _, r := range reports {
		for _, s := range r.Sessions {
			fmt.Fprintf(w, "%s\t%s\t%d\t%d\t%.1f\t%d\t%s\n",
				r.File.Name, s.Session, s.Rounds, s.Best, s.Average, s.Longest, s.PlayTime.Round(time.Second))
		}
	}
	w.Flush()
}

func main() {
	opts := config.FromEnv(config.Default())
	dir := opts.RecordDir
	if dir == "" {
		dir = config.RecordDir
	}

	flag.StringVar(&dir, "dir", dir, "Directory holding round history")
	addr := flag.String("addr", "", "Serve an HTML report on this address instead of printing")
	flag.Parse()

	if *addr == "" {
		reports, err := load(dir)
		if err != nil {
			log.Fatal(err)
		}
		printReports(reports)
		return
	}

	http.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		reports, err := load(dir)
		if err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}
		if err := indexTmpl.Execute(w, reports); err != nil {
			log.Println("Template error:", err)
		}
	})

	log.Printf("History report on http://localhost%s", *addr)
	log.Fatal(http.ListenAndServe(*addr, nil))
}
