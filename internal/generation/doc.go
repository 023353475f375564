// Package generation defines the boundary between the application and the
// LLM services that write short reading stories for learners. Services depend
// on the StoryGenerator interface; the Gemini adapter in platform/gemini
// implements it.
package generation
