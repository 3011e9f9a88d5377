// Package fuzztests houses Go fuzz harnesses that exercise the text
// analysis pipeline (masking -> sentence segmentation -> grammar
// rules). Its goal is to smoke test robustness and guard against
// panics on arbitrary byte sequences, valid UTF-8 or not.
//
// Назначение: прогонять произвольные байты через маскирование,
// сегментацию предложений и грамматические правила.
//
// Не делает: генерацию корпусов, запись файлов, выполнение CLI.
//
// Зависимости: internal/mask, internal/morph, internal/grammar,
// internal/diag.

package fuzztests
