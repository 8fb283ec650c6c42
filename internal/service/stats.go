package service

import "github.com/eventnav/backend/internal/model"

// ComputeStats - 평균(소수 첫째 자리, 0.5는 0에서 먼 쪽으로 반올림), 개수, 평점 분포.
// 레코드가 없으면 {0, 0, {}}. 분포에는 실제로 나온 평점만 들어간다.
func ComputeStats(records []model.FeedbackRecord) model.FeedbackStats {
	stats := model.FeedbackStats{
		RatingDistribution: make(map[int]int),
	}
	if len(records) == 0 {
		return stats
	}

	sum := 0
	for _, r := range records {
		sum += r.Rating
		stats.RatingDistribution[r.Rating]++
	}
	stats.TotalCount = len(records)
	stats.AverageRating = float64(roundTenths(sum, len(records))) / 10
	return stats
}

// sum/n 을 10배 한 값을 정수 연산으로 반올림 (부동소수 오차 없이)
func roundTenths(sum, n int) int {
	num := sum * 10
	if num >= 0 {
		return (2*num + n) / (2 * n)
	}
	return -((-2*num + n) / (2 * n))
}
