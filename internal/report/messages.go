package report

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

const (
	keyTurn        = "table.turn"
	keyNone        = "table.none"
	keyExchange    = "table.exchange"
	keyEmpty       = "table.empty"
	keyProbability = "result.probability"
	keySimulated   = "result.simulated"
)

func init() {
	en := language.English
	message.SetString(en, keyTurn, "Turn")
	message.SetString(en, keyNone, "No exchange")
	message.SetString(en, keyExchange, "Exchange %d")
	message.SetString(en, keyEmpty, "No turns in range")
	message.SetString(en, keyProbability, "Probability")
	message.SetString(en, keySimulated, "Simulated (%d trials)")

	ja := language.Japanese
	message.SetString(ja, keyTurn, "ターン")
	message.SetString(ja, keyNone, "交換なし")
	message.SetString(ja, keyExchange, "%d枚交換")
	message.SetString(ja, keyEmpty, "該当するターンはありません")
	message.SetString(ja, keyProbability, "確率")
	message.SetString(ja, keySimulated, "シミュレーション (%d回)")
}
