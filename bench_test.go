package cgraph

import (
	"testing"

	"github.com/hupe1980/cgraph/internal/baseline"
	"github.com/hupe1980/cgraph/testutil"
)

const (
	benchNodes = 10000
	benchEdges = 40000
)

func benchGraph(b *testing.B) (*MapGraph[int], *Graph[int]) {
	b.Helper()
	src := randomGraph(testutil.NewRNG(1), benchNodes, benchEdges, false)
	return src, mustCompile[int](b, src)
}

func BenchmarkCompile(b *testing.B) {
	src := randomGraph(testutil.NewRNG(1), benchNodes, benchEdges, false)

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := Compile[int](src); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkShortestPaths(b *testing.B) {
	src, g := benchGraph(b)

	b.Run("Compiled", func(b *testing.B) {
		b.ReportAllocs()
		for i := 0; i < b.N; i++ {
			g.ShortestPaths(i % benchNodes)
		}
	})

	b.Run("Baseline", func(b *testing.B) {
		b.ReportAllocs()
		for i := 0; i < b.N; i++ {
			baseline.ShortestPaths[int](src, i%benchNodes, DefaultWeight)
		}
	})
}

func BenchmarkShortestPath(b *testing.B) {
	src, g := benchGraph(b)
	pairs := testutil.NewRNG(2).Pairs(benchNodes, 1024)

	b.Run("Compiled", func(b *testing.B) {
		b.ReportAllocs()
		for i := 0; i < b.N; i++ {
			p := pairs[i%len(pairs)]
			g.ShortestPath(p[0], p[1])
		}
	})

	b.Run("Baseline", func(b *testing.B) {
		b.ReportAllocs()
		for i := 0; i < b.N; i++ {
			p := pairs[i%len(pairs)]
			baseline.ShortestPathLength[int](src, p[0], p[1], DefaultWeight)
		}
	})
}

func BenchmarkBFS(b *testing.B) {
	src, g := benchGraph(b)

	b.Run("Compiled", func(b *testing.B) {
		b.ReportAllocs()
		for i := 0; i < b.N; i++ {
			g.BFS(i % benchNodes)
		}
	})

	b.Run("Baseline", func(b *testing.B) {
		b.ReportAllocs()
		for i := 0; i < b.N; i++ {
			baseline.BFS[int](src, i%benchNodes)
		}
	})
}

func BenchmarkShortestPath_Grid(b *testing.B) {
	src := NewMapGraph[int](false)
	for _, e := range testutil.Grid(100, 100) {
		src.AddEdge(e.From, e.To, e.Weight)
	}
	g := mustCompile[int](b, src)

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		g.ShortestPath(0, 100*100-1)
	}
}

func BenchmarkComponents(b *testing.B) {
	src, g := benchGraph(b)

	b.Run("Compiled", func(b *testing.B) {
		b.ReportAllocs()
		for i := 0; i < b.N; i++ {
			g.Components()
		}
	})

	b.Run("Baseline", func(b *testing.B) {
		b.ReportAllocs()
		for i := 0; i < b.N; i++ {
			baseline.Components[int](src)
		}
	})
}

func BenchmarkShortestPaths_Parallel(b *testing.B) {
	_, g := benchGraph(b)

	b.ReportAllocs()
	b.ResetTimer()
	b.RunParallel(func(pb *testing.PB) {
		i := 0
		for pb.Next() {
			g.ShortestPaths(i % benchNodes)
			i++
		}
	})
}
