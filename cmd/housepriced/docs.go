package main

// General API documentation for swaggo. Run `make swagger-gen` to regenerate docs/.
//
// @title           housepriced API
// @version         1.0
// @description     House price prediction with linear regression, SVR and logistic regression.
//
// @contact.name   housepriced maintainers
//
// @license.name   MIT
// @license.url    https://opensource.org/licenses/MIT
//
// @BasePath  /
//
// @schemes http
