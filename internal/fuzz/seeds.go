package fuzztests

import (
	"strings"
	"testing"
)

const maxFuzzInput = 1 << 16 // 64 KiB

// addCorpusSeeds добавляет в корпус фрагменты, похожие на реальные
// документы: японская проза, код с комментариями, битый UTF-8.
func addCorpusSeeds(f *testing.F) {
	f.Add([]byte{})
	f.Add([]byte("もずくは海藻です。"))
	f.Add([]byte("今日は、朝から、雨が、降って、いました。"))
	f.Add([]byte("これは食べれる。見れるかな？\n\n次の段落です！"))
	f.Add([]byte("しかし、行きたいが、高いが、遠い。"))
	f.Add([]byte("package x\n// 日本語のコメント\nvar n int\n"))
	f.Add([]byte("# コメント\nprint('こんにちは')\n"))
	f.Add([]byte("/* ブロック\n * コメント */\nint main() {}\n"))
	f.Add([]byte("改行\r\nと\rの混在。"))
	f.Add([]byte{0xff, 0xfe, 0xe3, 0x81})
	f.Add([]byte("句点なしの長い文" + strings.Repeat("、", 64)))
	f.Add([]byte(strings.Repeat("。", 256)))
}
