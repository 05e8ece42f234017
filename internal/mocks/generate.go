package mocks

//go:generate go run github.com/vektra/mockery/v2@v2.53.5 --name Source --dir ../domain/roster --output domain/roster --outpkg rostermock --filename source_mock.go
//go:generate go run github.com/vektra/mockery/v2@v2.53.5 --name Source --dir ../domain/fantasy --output domain/fantasy --outpkg fantasymock --filename source_mock.go
