package main

import (
	"flag"
	"io"
	"net/http"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
	"text/template"

	"go.uber.org/zap"
)

// target 需要编译的前端,终端版依赖 tcell,不能编译成 wasm
type target struct {
	dir  string
	wasm bool
}

var targets = []target{
	{dir: "ChineseChess", wasm: true},
	{dir: "ChineseChessTerm"},
}

func main() {
	fa := flag.String("addr", ":8080", "listen address")
	fd := flag.String("dir", ".", "files directory to serve")
	fb := flag.Bool("b", false, "build all front ends")
	flag.Parse()

	logger, err := zap.NewDevelopment()
	if err != nil {
		panic(err)
	}
	//goland:noinspection GoUnhandledErrorResult
	defer logger.Sync()

	if *fb {
		if err = build(logger); err != nil {
			logger.Fatal("build", zap.Error(err))
		}
		return
	}

	logger.Info("listening", zap.String("addr", *fa), zap.String("dir", *fd))
	if err = http.ListenAndServe(*fa, newHandler(*fd)); err != nil {
		logger.Fatal("serve", zap.Error(err))
	}
}

// newHandler 只提供 wasm.html 和 .wasm 文件,其他路径都跳转到 wasm.html
func newHandler(dir string) http.Handler {
	fh := http.FileServer(http.Dir(dir))
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/wasm.html" || filepath.Ext(r.URL.Path) == ".wasm" {
			fh.ServeHTTP(w, r)
			return
		}
		http.Redirect(w, r, "/wasm.html", http.StatusFound)
	})
}

func build(logger *zap.Logger) error {
	ldSW := "-s -w"
	//goland:noinspection GoBoolExpressions
	if runtime.GOOS == `windows` {
		ldSW += " -H windowsgui"
	}

	var games []string
	for _, t := range targets {
		if err := goBuild(logger, t.dir, ldSW, "..", "CGO_ENABLED=0"); err != nil {
			return err
		}
		if !t.wasm {
			continue
		}
		if err := goBuild(logger, t.dir, "-s -w", "../"+t.dir+".wasm",
			"CGO_ENABLED=0", "GOOS=js", "GOARCH=wasm"); err != nil {
			return err
		}
		games = append(games, t.dir)
	}

	if len(games) == 0 {
		return nil
	}
	fw, err := os.Create("wasm.html")
	if err != nil {
		return err
	}
	defer fw.Close()
	return writeIndex(fw, games)
}

func goBuild(logger *zap.Logger, dir, ldflags, out string, env ...string) error {
	cmd := exec.Command("go", "build", "-C", dir, "-trimpath", "-ldflags", ldflags, "-o", out)
	cmd.Env = append(os.Environ(), env...)
	info, err := cmd.CombinedOutput()
	if err != nil {
		logger.Error("go build", zap.String("dir", dir), zap.Strings("env", env), zap.ByteString("output", info))
		return err
	}
	logger.Info("go build", zap.String("dir", dir), zap.String("out", out), zap.Strings("env", env))
	return nil
}

var indexTmpl = template.Must(template.New("index").Parse(`<html>
<head>
    <meta charset="utf-8">
    <title>中国象棋</title>
</head>
<body>
<script src="https://cdn.jsdelivr.net/gh/golang/go/misc/wasm/wasm_exec.js"></script>
<script>
    if (!WebAssembly.instantiateStreaming) {
        WebAssembly.instantiateStreaming = async (resp, importObject) => {
            const source = await (await resp).arrayBuffer();
            return await WebAssembly.instantiate(source, importObject);
        };
    }
    function run(wasm) {
        const go = new Go();
        WebAssembly.instantiateStreaming(fetch(wasm), go.importObject).then((res) => {
            go.run(res.instance);
        }).catch((err) => {
            console.error(err);
        });
    }
</script>
<ul>
{{range .games -}}
<li><button onClick="run('{{.}}.wasm');">Run {{.}}</button></li>
{{end -}}
</ul>
</body>
</html>`))

func writeIndex(w io.Writer, games []string) error {
	return indexTmpl.Execute(w, map[string]any{"games": games})
}
