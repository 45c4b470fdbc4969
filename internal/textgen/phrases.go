package textgen

// Praise templates per category key. {nome} and {valor} are replaced
// with the champion's name and total.
var phraseBank = map[string][]string{
	"totalGoals": {
		"{nome} foi artilheiro nato: {valor} gols, especialista em furar redes a temporada inteira!",
		"{nome} não perdoou ninguém: {valor} gols e sentindo o cheiro da Ballon d'Or próximo ano.",
		"{nome} é máquina de fazer gol: {valor} gols marcados e goleiros chorando até agora.",
	},
	"totalAssistence": {
		"{nome} é garçom de luxo: {valor} assistências servindo gol na bandeja.",
		"Com {valor} assistências, {nome} faz a bola falar e os companheiros brilharem.",
		"{nome} é o assistente oficial da pelada: {valor} assistências e muito respeito.",
	},
	"totalWins": {
		"{nome} é sinônimo de vitória: {valor} vitórias e muita resenha no pós-jogo.",
		"Quando {nome} está em campo, as {valor} vitórias mostram quem manda na pelada.",
		"{nome} é garantia de vitória: {valor} vitórias e time sempre na frente.",
	},
	"totalGamePlayed": {
		"{nome} é presença garantida: {valor} partidas disputadas, dedicação garantida!",
		"Com {valor} partidas no currículo, {nome} prova que não falta em nenhuma pelada.",
		"{nome} não falta nunca: {valor} partidas e sempre pronto pra jogar.",
	},
	"totalDefeat": {
		"{nome} colecionou {valor} derrotas, mas nunca desistiu de jogar...continua perdendo mais e mais.",
		"Mesmo com {valor} derrotas, {nome} sempre volta mais forte...pra perder a próxima partida.",
		"{nome} teve {valor} derrotas, mas a não desistiu...por que não é ruim perder, é ruim perder sem tentar.",
	},
	"totalDraw": {
		"{nome} empatou {valor} vezes, sempre equilibrado e justo.",
		"Com {valor} empates, {nome} mostra que sabe equilibrar o jogo.",
		"{nome} tem {valor} empates no histórico, sempre deixando tudo no meio termo.",
	},
	"artilheiro": {
		"Craque de bola e próximo ganhador da bola de ouro! {nome} foi artilheiro {valor} vezes.",
		"{nome} tem faro de gol absurdo: {valor} vezes como artilheiro, impossível marcar esse cara.",
		"{nome} é o goleador oficial: {valor} vezes artilheiro e sempre no topo.",
	},
	"craque": {
		"Craque de bola e próximo ganhador da bola de ouro! {nome} levou {valor} prêmios de craque da partida.",
		"{nome} liga o modo destaque e o resto é história: {valor} vezes craque do jogo.",
		"{nome} é o craque da pelada: {valor} vezes eleito e sempre brilhando.",
	},
	"garcom": {
		"{nome} é o garçom oficial: {valor} assistências servidas e todos agradecem!",
		"Com {valor} assistências, {nome} serve gol na bandeja e faz a diferença.",
		"{nome} é especialista em servir: {valor} assistências e muito respeito.",
	},
	"muralha": {
		"{nome} é uma muralha intransponível: {valor} defesas e goleiros invejando.",
		"Com {valor} defesas, {nome} prova que é a muralha da pelada.",
		"{nome} é sinônimo de defesa: {valor} vezes como muralha e sempre seguro.",
	},
	"bolaMurcha": {
		"{nome} teve {valor} momentos como bola murcha, mas sempre vai em busca de mais momentos...",
		"Mesmo com {valor} bolas murchas, {nome} não desiste e sempre volta pior.",
		"{nome} colecionou {valor} bolas murchas, mas a determinação continua pra colecionando mais.",
	},
	"xerifao": {
		"{nome} é o xerifão da pelada: {valor} vezes no comando e sempre casca grossa.",
		"Com {valor} atuações como xerifão, {nome} mantém a ordem em campo.",
		"{nome} é o guardião da pelada: {valor} vezes como xerifão e sempre presente.",
	},
	"pereba": {
		"Mais pereba impossível: {nome} garantiu o troféu com {valor}x o mais perebento da pelada.",
		"Com {valor} perebas no currículo, {nome} prova que até nos melhores dias, tem dias ruins.",
		"{nome} colecionou {valor} perebas, mas sempre volta a ser ruim só pela resenha.",
	},
	"goleiro_totalGamePlayed": {
		"{nome} é o goleiro mais presente: {valor} partidas defendendo o gol!",
		"Com {valor} partidas como goleiro, {nome} é garantia de segurança no gol.",
		"{nome} não falta nunca: {valor} partidas defendendo e sempre no seu melhor.",
	},
	"goleiro_totalWins": {
		"{nome} é sinônimo de vitória no gol: {valor} vitórias e muito respeito.",
		"Com {valor} vitórias como goleiro, {nome} prova que é fundamental pro time.",
		"{nome} é garantia de vitória: {valor} triunfos defendendo o gol.",
	},
	"goleiro_totalDefeat": {
		"{nome} teve {valor} derrotas no gol, mas sempre volta mais forte!",
		"Mesmo com {valor} derrotas, {nome} continua firme defendendo o gol.",
		"{nome} colecionou {valor} derrotas, mas a determinação nunca acaba.",
	},
	"goleiro_totalDraw": {
		"{nome} empatou {valor} vezes no gol, sempre equilibrado e justo.",
		"Com {valor} empates, {nome} mostra que sabe equilibrar o jogo no gol.",
		"{nome} tem {valor} empates defendendo, sempre deixando tudo no meio termo.",
	},
}

// Generic templates for categories without a dedicated set.
var genericPhrases = []string{
	"{nome} dominou essa categoria com {valor} no total, simplesmente absurdo!",
	"Com {valor} nessa categoria, {nome} provou que é brabo demais!",
	"{nome} fez {valor} e mostrou que é o cara nessa categoria!",
	"Impossível não reconhecer: {nome} arrasou com {valor} nessa categoria!",
	"{nome} é sinônimo de excelência: {valor} e muito respeito!",
}
