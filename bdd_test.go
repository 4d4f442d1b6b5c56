package accounts

import (
	"testing"

	. "github.com/smartystreets/goconvey/convey"
)

func TestAccountLifecycle(t *testing.T) {
	Convey("Given an empty account store", t, func() {
		svc := NewService(NewInMemoryRepository(), SHA256Hasher{}, NopEvents{})
		So(svc.Count(), ShouldEqual, 0)

		Convey("When Ana registers", func() {
			acc, err := svc.Register(RegisterRequest{
				FirstName:            "Ana",
				LastName:             "Silva",
				Email:                "ana@example.com",
				Password:             "Abcdef1!",
				PasswordConfirmation: "Abcdef1!",
			})
			So(err, ShouldBeNil)
			So(acc.FullName, ShouldEqual, "Ana Silva")
			So(svc.Count(), ShouldEqual, 1)

			Convey("Then she can authenticate with her password", func() {
				logged, err := svc.Authenticate("ana@example.com", "Abcdef1!")
				So(err, ShouldBeNil)
				So(logged.FullName, ShouldEqual, "Ana Silva")

				Convey("And after changing her password", func() {
					err := svc.ChangePassword(logged, "Abcdef1!", "Zxcvbn2@", "Zxcvbn2@")
					So(err, ShouldBeNil)

					Convey("The old password no longer authenticates", func() {
						_, err := svc.Authenticate("ana@example.com", "Abcdef1!")
						So(err, ShouldEqual, ErrInvalidCredentials)
					})

					Convey("The new password does", func() {
						_, err := svc.Authenticate("ana@example.com", "Zxcvbn2@")
						So(err, ShouldBeNil)
					})
				})
			})
		})
	})
}

func TestDeletedAccountLeavesNoTrace(t *testing.T) {
	Convey("Given a registered account", t, func() {
		svc := NewService(NewInMemoryRepository(), SHA256Hasher{}, NopEvents{})
		svc.Register(RegisterRequest{
			FirstName:            "Ana",
			LastName:             "Silva",
			Email:                "ana@example.com",
			Password:             "Abcdef1!",
			PasswordConfirmation: "Abcdef1!",
		})
		acc, _ := svc.Authenticate("ana@example.com", "Abcdef1!")

		Convey("When the account is deleted", func() {
			So(svc.DeleteAccount(acc), ShouldBeNil)

			Convey("Then authentication fails with the generic credentials error", func() {
				_, err := svc.Authenticate("ana@example.com", "Abcdef1!")
				So(err, ShouldEqual, ErrInvalidCredentials)
			})

			Convey("And registering the email again succeeds", func() {
				_, err := svc.Register(RegisterRequest{
					FirstName:            "Ana",
					LastName:             "Silva",
					Email:                "ana@example.com",
					Password:             "Zxcvbn2@",
					PasswordConfirmation: "Zxcvbn2@",
				})
				So(err, ShouldBeNil)
			})
		})
	})
}
