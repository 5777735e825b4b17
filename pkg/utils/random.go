package utils

import (
	"math"
	"math/rand/v2"
)

// RandRange 返回 [min, max) 内的均匀随机数；min == max 时直接返回 min
func RandRange(rng *rand.Rand, min, max float64) float64 {
	if max <= min {
		return min
	}
	return min + rng.Float64()*(max-min)
}

// RandIntRange 返回 [min, max] 闭区间内的均匀随机整数
func RandIntRange(rng *rand.Rand, min, max int) int {
	if max <= min {
		return min
	}
	return min + rng.IntN(max-min+1)
}

// RandAngle 返回 [0, 2π) 内的随机角度
func RandAngle(rng *rand.Rand) float64 {
	return rng.Float64() * 2 * math.Pi
}

// RandPick 从切片中均匀选取一个元素，切片不能为空
func RandPick[T any](rng *rand.Rand, items []T) T {
	return items[rng.IntN(len(items))]
}

// NewRand 创建指定种子的 PCG 随机源
// seed 为 0 时使用随机种子
func NewRand(seed uint64) *rand.Rand {
	if seed == 0 {
		seed = rand.Uint64()
	}
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}
