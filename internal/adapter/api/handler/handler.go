package handler

import (
	"unihostel/internal/usecase"
)

var (
	authHandler         *AuthHandler
	hostelHandler       *HostelHandler
	ratingHandler       *RatingHandler
	bookingHandler      *BookingHandler
	wishlistHandler     *WishlistHandler
	verificationHandler *VerificationHandler
	contactHandler      *ContactHandler
	universityHandler   *UniversityHandler
)

func Setup(
	authUseCase *usecase.AuthUseCase,
	hostelUseCase *usecase.HostelUseCase,
	ratingUseCase *usecase.RatingUseCase,
	bookingUseCase *usecase.BookingUseCase,
	wishlistUseCase *usecase.WishlistUseCase,
	verificationUseCase *usecase.VerificationUseCase,
	contactUseCase *usecase.ContactUseCase,
	universityUseCase *usecase.UniversityUseCase,
) {
	authHandler = NewAuthHandler(authUseCase)
	hostelHandler = NewHostelHandler(hostelUseCase)
	ratingHandler = NewRatingHandler(ratingUseCase)
	bookingHandler = NewBookingHandler(bookingUseCase)
	wishlistHandler = NewWishlistHandler(wishlistUseCase)
	verificationHandler = NewVerificationHandler(verificationUseCase)
	contactHandler = NewContactHandler(contactUseCase)
	universityHandler = NewUniversityHandler(universityUseCase)
}

func GetAuthHandler() *AuthHandler {
	return authHandler
}

func GetHostelHandler() *HostelHandler {
	return hostelHandler
}

func GetRatingHandler() *RatingHandler {
	return ratingHandler
}

func GetBookingHandler() *BookingHandler {
	return bookingHandler
}

func GetWishlistHandler() *WishlistHandler {
	return wishlistHandler
}

func GetVerificationHandler() *VerificationHandler {
	return verificationHandler
}

func GetContactHandler() *ContactHandler {
	return contactHandler
}

func GetUniversityHandler() *UniversityHandler {
	return universityHandler
}
