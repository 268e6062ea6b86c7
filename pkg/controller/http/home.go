package http

import (
	"net/http"

	"github.com/m-mizutani/ctxlog"
)

// handleHome serves the single-page dashboard. The page polls the
// problems and status endpoints and renders the active incident table.
func (s *Server) handleHome(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write([]byte(homePage)); err != nil {
		ctxlog.From(r.Context()).Error("Failed to write dashboard page", "error", err)
	}
}

const homePage = `<!DOCTYPE html>
<html>
<head>
    <title>Zabbix Monitor</title>
    <style>
        body {
            font-family: -apple-system, BlinkMacSystemFont, "Segoe UI", Roboto, "Helvetica Neue", Arial, sans-serif;
            margin: 0;
            background: #1b1e23;
            color: #e6e6e6;
        }
        header {
            display: flex;
            justify-content: space-between;
            align-items: center;
            padding: 1rem 2rem;
            background: #23272e;
            border-bottom: 1px solid #333;
        }
        h1 { margin: 0; font-size: 1.4rem; }
        #badge {
            background: #E45959;
            border-radius: 1rem;
            padding: 0.2rem 0.8rem;
            font-weight: bold;
        }
        #badge.clear { background: #59DB8F; color: #1b1e23; }
        #notice { padding: 0.5rem 2rem; color: #aaa; font-size: 0.9rem; }
        table { width: 100%; border-collapse: collapse; }
        th, td { text-align: left; padding: 0.6rem 2rem; border-bottom: 1px solid #2c313a; }
        th { color: #888; font-weight: normal; font-size: 0.85rem; text-transform: uppercase; }
        td.name { cursor: pointer; text-decoration: underline; }
        img.graph { max-width: 100%; padding: 0.5rem 2rem; }
    </style>
</head>
<body>
    <header>
        <h1>Zabbix Monitor</h1>
        <span id="badge" class="clear">0</span>
    </header>
    <div id="notice"></div>
    <table>
        <thead>
            <tr><th>Severity</th><th>Host</th><th>Problem</th><th>Since</th></tr>
        </thead>
        <tbody id="problems"></tbody>
    </table>
    <img id="graph" class="graph" hidden>
    <script>
        async function refresh() {
            const snap = await fetch('/api/problems').then(r => r.json());
            const rows = (snap.problems || []).map(p =>
                '<tr><td>' + p.severity + '</td><td>' + p.host_name +
                '</td><td class="name" onclick="showGraph(this.textContent)">' + p.name +
                '</td><td>' + new Date(p.occurred_at).toLocaleString() + '</td></tr>');
            document.getElementById('problems').innerHTML = rows.join('');

            const status = await fetch('/api/status').then(r => r.json());
            const badge = document.getElementById('badge');
            badge.textContent = status.active_count;
            badge.className = status.active_count > 0 ? '' : 'clear';
            if (status.last_notice) {
                document.getElementById('notice').textContent =
                    status.last_notice.title + ': ' + status.last_notice.message;
            }
        }
        function showGraph(name) {
            const img = document.getElementById('graph');
            img.src = '/api/graph?name=' + encodeURIComponent(name) + '&_=' + Date.now();
            img.hidden = false;
        }
        refresh();
        setInterval(refresh, 10000);
    </script>
</body>
</html>`
