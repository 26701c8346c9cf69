package utils

import "hash/fnv"

// StringToSeed детерминированно превращает строку в сид генератора.
// Сид сессии зависит только от ее идентификатора, поэтому одна и та же
// сессия (например, при отладке с фиксированным ID) дает одну и ту же
// последовательность спавнов.
func StringToSeed(s string) int64 {
	h := fnv.New64a()
	// Write у fnv никогда не возвращает ошибку
	_, _ = h.Write([]byte(s))
	return int64(h.Sum64())
}
