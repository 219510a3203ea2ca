package cache

import "testing"

func BenchmarkCacheGetOrCreateHit(b *testing.B) {
	c := New[int, int]()
	for i := 0; i < 100; i++ {
		_, _, _ = c.GetOrCreate(i, func() (int, error) { return i, nil })
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _, _ = c.GetOrCreate(i%100, func() (int, error) { return i, nil })
	}
}

func BenchmarkCacheDeleteFunc(b *testing.B) {
	for i := 0; i < b.N; i++ {
		b.StopTimer()
		c := New[int, int]()
		for k := 0; k < 100; k++ {
			_, _, _ = c.GetOrCreate(k, func() (int, error) { return k, nil })
		}
		b.StartTimer()
		c.DeleteFunc(func(k, _ int) bool { return k%2 == 0 }, func(int, int) {})
	}
}
