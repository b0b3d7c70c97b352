package response

type CountUpResponse struct {
	RoomsCount   int64 `json:"roomsCount"`
	ReviewsCount int64 `json:"reviewsCount"`
	TotalRating  int64 `json:"totalRating"`
}
