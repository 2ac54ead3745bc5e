// Package opentdb provides a client for the Open Trivia Database API.
//
// # Architecture
//
// The package is organized into three parts:
//
//   - Transport: GET requests with fixed headers, mapping HTTP statuses and
//     service response codes onto typed errors
//   - Question decoding: raw records become Question values with capitalized
//     type/difficulty and HTML entities decoded
//   - Client: owns the session token and the category table, validates
//     arguments and recovers once from token failures
//
// # Usage
//
//	logger := zerolog.New(os.Stdout)
//	client, err := opentdb.NewClient(ctx, logger,
//		opentdb.WithTimeout(10*time.Second),
//	)
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	questions, err := client.GetQuestions(ctx, 10, opentdb.Query{
//		Category:   "General Knowledge",
//		Difficulty: opentdb.DifficultyEasy,
//	})
//
// # Session tokens
//
// NewClient requests a token so the service does not repeat questions. When a
// question request fails because the token is unknown, GetQuestions requests a
// new token and retries once; when the token is exhausted it resets the token
// and retries once. A second failure is returned to the caller.
//
// A Client is not safe for concurrent GetQuestions calls.
//
// # Error Handling
//
// Service and transport failures are *Error values with a Kind:
//
//   - ErrNoResults, ErrInvalidParameter, ErrTokenNotFound, ErrTokenEmpty:
//     service response codes 1-4
//   - ErrUnexpectedResponseCode: any other response code
//   - ErrHTTP: non-2xx status, Code carries the status
//   - ErrParse: undecodable body
//
// Arguments rejected before a request are *ArgumentError values matching
// ErrInvalidArgument:
//
//	if errors.Is(err, opentdb.ErrNoResults) {
//		// ask for fewer questions
//	}
package opentdb
