package emotion

import "github.com/yumeno/kokoro/internal/fingerprint"

// commentPools holds the one-line comments per category and band.
var commentPools = map[Category]map[Band][]string{
	Affection: {
		BandHigh: {"気持ちが溢れています", "まっすぐな好意が伝わってきます"},
		BandMid:  {"好意がはっきり見えます", "温かい気持ちが乗っています"},
		BandSoft: {"ほのかな好意を感じます", "さりげない好意が滲んでいます"},
	},
	Longing: {
		BandHigh: {"会いたい気持ちでいっぱいです", "距離がもどかしいようです"},
		BandMid:  {"会いたさが顔を出しています", "相手を思い浮かべているようです"},
		BandSoft: {"少しだけ恋しさが混ざっています", "遠くを見ているような文です"},
	},
	Joy: {
		BandHigh: {"喜びが弾けています", "とても明るい文です"},
		BandMid:  {"楽しい気分が伝わります", "前向きな空気があります"},
		BandSoft: {"小さな嬉しさが見えます", "穏やかな明るさがあります"},
	},
	Loneliness: {
		BandHigh: {"寂しさが強く出ています", "ひとりの時間が長いようです"},
		BandMid:  {"寂しさがにじんでいます", "どこか物足りなさを感じているようです"},
		BandSoft: {"かすかな寂しさがあります", "静かな夜の文のようです"},
	},
	Anxiety: {
		BandHigh: {"不安が大きくなっています", "かなり気を揉んでいるようです"},
		BandMid:  {"心配ごとが頭にあるようです", "落ち着かない様子です"},
		BandSoft: {"少しの不安が混ざっています", "気がかりが残っているようです"},
	},
}

// Comment returns a one-line comment for category c at the band its
// score falls in. Selection is deterministic, seeded by the analyzed
// text, so re-rendering the same text yields the same comment.
func Comment(c Category, score float64, seed string) string {
	pools, ok := commentPools[c]
	if !ok {
		return ""
	}
	return fingerprint.Pick(seed+string(c), pools[BandFor(score)])
}
