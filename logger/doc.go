/*
Package logger provides logging functionality to code building on enumerate
by defining the required behavior in [Logger]
and providing an implementation of it with [StdLogger].

# Overview

The Logger interface outputs messages at certain levels of importance.
LogLevel is the type to use to represent those levels.
An implementation of Logger may be initialized at a certain [LogLevel]
and only emit messages at or above that level of importance.
For example, [StdLogger] accepts a [LogLevel],
and if initialized with [LogLevelWarn],
only [*StdLogger.Warn], [*StdLogger.Error], and [*StdLogger.Fatal] produce messages.

# StdLogger

The [StdLogger] is the implementation of [Logger] returned by the [New] function.

Log messages emitted by [StdLogger] are composed of a few parts:
  - timestamp
  - log level
  - call site
  - message
  - log context

Here's an example:

	2022/04/28 15:55:21 [DEBUG] enumerate/registry.go:43 'sealed "Season" with 4 members' log_context: {"data":{"kind":"Season"}}

The file, line number, and parent directory of where a [StdLogger] method
was called comprise the call site.
The message is the actual string passed into the [StdLogger] method.
Lastly, the log context is a JSON-encoded [*LogContext],
which allows for including additional data inessential to the message proper.

# SkipLogger

Sometimes, especially with internal packages, the file and line number in a log needs to be configurable.
[SkipLogger] provides additional configuration functionality by setting the number of frames to skip
back in order to reach the desired caller.
*/
package logger
