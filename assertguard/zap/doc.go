// Package zap routes assertion diagnostics into zap.
//
// A Sink receives each failed guarded check as one error entry. The message
// is the diagnostic line and the assertion.context, assertion.file,
// assertion.line and assertion.action fields are kept as typed zap fields:
//
//	sink, err := zap.NewSink(zap.Config{Environment: zap.EnvironmentProduction})
//	if err != nil {
//		return err
//	}
//
//	_ = assert.Init(assert.WithSink(sink))
package zap
