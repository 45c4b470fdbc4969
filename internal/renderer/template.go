package renderer

// The page is fully self-contained: inline styles, system fonts, and no
// assets beyond the player photos themselves.
const pageTemplate = `<!DOCTYPE html>
<html lang="pt-BR">
<head>
    <meta charset="UTF-8">
    <meta name="viewport" content="width=device-width, initial-scale=1.0">
    <meta name="theme-color" content="#0a1929">
    <title>Ranking Galático - Sua Jornada</title>
    <style>
        * { margin: 0; padding: 0; box-sizing: border-box; }
        body {
            font-family: 'Inter', -apple-system, BlinkMacSystemFont, 'Segoe UI', sans-serif;
            background: linear-gradient(160deg, #0a1929 0%, #12263a 60%, #0a1929 100%);
            color: #f1f5f9;
            min-height: 100vh;
            padding: 24px 16px 48px;
        }
        header { text-align: center; margin-bottom: 32px; }
        header h1 {
            font-size: 2.2em;
            font-weight: 800;
            background: linear-gradient(90deg, #60a5fa, #a78bfa);
            -webkit-background-clip: text;
            background-clip: text;
            color: transparent;
        }
        header .subtitulo { color: #94a3b8; margin-top: 8px; }
        header .atualizado { color: #64748b; font-size: 0.8em; margin-top: 6px; }
        main { max-width: 680px; margin: 0 auto; display: grid; gap: 20px; }
        .categoria {
            background: rgba(255, 255, 255, 0.04);
            border: 1px solid rgba(255, 255, 255, 0.08);
            border-radius: 16px;
            padding: 20px;
        }
        .categoria-header { display: flex; align-items: center; gap: 10px; margin-bottom: 16px; }
        .categoria-icone { font-size: 1.6em; }
        .categoria-header h2 { font-size: 1.2em; font-weight: 700; }
        .campeao { display: flex; align-items: center; gap: 14px; margin-bottom: 14px; }
        .campeao-foto {
            width: 64px; height: 64px; border-radius: 50%;
            object-fit: cover; border: 2px solid #60a5fa;
        }
        .campeao-inicial {
            width: 64px; height: 64px; border-radius: 50%;
            display: flex; align-items: center; justify-content: center;
            background: #1e3a5f; color: #93c5fd;
            font-size: 1.6em; font-weight: 700;
        }
        .campeao-nome { font-weight: 700; font-size: 1.05em; }
        .campeao-frase { color: #cbd5e1; font-size: 0.9em; margin-top: 4px; }
        .campeao-perfil { color: #a78bfa; font-size: 0.8em; margin-top: 4px; }
        .podio { list-style: none; }
        .podio li {
            display: flex; align-items: center; gap: 10px;
            padding: 8px 6px;
            border-top: 1px solid rgba(255, 255, 255, 0.06);
        }
        .podio-medalha { width: 28px; }
        .podio-nome { flex: 1; }
        .podio-valor { font-weight: 700; color: #60a5fa; }
        .sem-dados { color: #64748b; text-align: center; padding: 12px 0; }
        footer { text-align: center; margin-top: 40px; color: #94a3b8; }
        footer .hashtag { margin-top: 8px; font-weight: 700; color: #60a5fa; }
    </style>
</head>
<body>
    <header>
        <h1>Ranking Galático</h1>
        <p class="subtitulo">Descubra sua jornada e compare-se com os grandes do futebol</p>
        <p class="atualizado">Atualizado em {{.GeneratedAt}} · {{.PlayerCount}} jogadores</p>
    </header>
    <main>
{{- range .Categories}}
        <section class="categoria">
            <div class="categoria-header">
                <span class="categoria-icone">{{.Icon}}</span>
                <h2>{{.Name}}</h2>
            </div>
{{- if .Rows}}
            <div class="campeao">
{{- if .Champion.Image}}
                <img class="campeao-foto" src="{{.Champion.Image}}" alt="{{.Champion.Name}}">
{{- else}}
                <div class="campeao-inicial">{{.Champion.Initial}}</div>
{{- end}}
                <div class="campeao-texto">
                    <div class="campeao-nome">{{.Champion.Name}}</div>
                    <div class="campeao-frase">{{.Champion.Phrase}}</div>
{{- if .Champion.Profile}}
                    <div class="campeao-perfil">Estilo {{.Champion.Profile}}</div>
{{- end}}
                </div>
            </div>
            <ol class="podio">
{{- range .Rows}}
                <li>
                    <span class="podio-medalha">{{.Medal}}</span>
                    <span class="podio-nome">{{.Name}}</span>
                    <span class="podio-valor">{{.Quantity}}</span>
                </li>
{{- end}}
            </ol>
{{- else}}
            <div class="sem-dados">Nenhum dado disponível</div>
{{- end}}
        </section>
{{- end}}
    </main>
    <footer>
        <p>Temporada encerrada. A próxima já está te esperando!</p>
        <p class="hashtag">#GalaticosFC</p>
    </footer>
</body>
</html>
`
