package blog

// Bodies of the demo posts.
const (
	championshipContent = `<div class="prose prose-lg max-w-none">
<p>In a thrilling match that will be remembered for years to come, ASA secured their first championship title in over a decade with a spectacular 3-2 victory against Wydad Casablanca at the Mohammed V Stadium.</p>
<h2>Match Highlights</h2>
<p>The match started with high intensity from both sides. ASA took an early lead in the 15th minute through a brilliant strike from Youssef Amrani, who curled the ball into the top corner from 25 yards out.</p>
<p>Wydad responded quickly, equalizing just 10 minutes later through their captain Badr Benoun. The first half ended 1-1, setting up what would be an unforgettable second half.</p>
<h2>Second Half Drama</h2>
<p>The second half saw end-to-end action with both teams creating numerous chances. ASA regained the lead in the 65th minute when striker Ahmed Reda capitalized on a defensive error to slot home from close range.</p>
<p>Just when it seemed ASA had secured the victory, Wydad struck back in the 88th minute through a controversial penalty, sending the match into extra time.</p>
<h2>Extra Time Glory</h2>
<p>In the 105th minute of extra time, substitute Mehdi Alaoui became the hero, scoring the winning goal with a spectacular overhead kick that sent the ASA fans into delirium.</p>
<p>This victory marks ASA's return to the top of Moroccan football and validates the hard work put in by coach Rachid Taoussi and his squad throughout the season.</p>
<h2>What This Means</h2>
<p>This championship win is more than just a trophy - it represents the culmination of years of rebuilding and investment in youth development. The victory also secures ASA's place in next season's CAF Champions League.</p>
</div>`

	signingContent = `<div class="prose prose-lg max-w-none">
<p>ASA is delighted to announce the signing of midfielder Youssef Amrani from Raja Casablanca on a three-year deal.</p>
<h2>Player Profile</h2>
<p>Amrani, 26, brings a wealth of experience having made over 100 appearances for Raja Casablanca and earned 15 caps for the Moroccan national team.</p>
<p>Known for his technical ability, vision, and leadership qualities, Amrani will add significant depth to ASA's midfield options for the upcoming season.</p>
<h2>Manager's Comments</h2>
<p>"Youssef is exactly the type of player we've been looking for," said head coach Rachid Taoussi. "His experience at the highest level and his understanding of Moroccan football will be invaluable to our squad."</p>
<p>"I'm excited to work with him and I'm confident he'll make an immediate impact on our team's performance."</p>
<h2>Player's Statement</h2>
<p>"I'm thrilled to join ASA," said Amrani. "This is a club with great ambition and I'm looking forward to contributing to the team's success."</p>
<p>"The project here is very exciting and I can't wait to get started and meet my new teammates."</p>
</div>`

	typescriptContent = `<div class="prose prose-lg max-w-none">
<p>TypeScript has revolutionized the way we write JavaScript, providing type safety and better developer experience. In this comprehensive guide, we'll explore advanced TypeScript techniques that will take your coding skills to the next level.</p>
<h2>Generic Types and Constraints</h2>
<p>Generics are one of TypeScript's most powerful features, allowing you to write reusable code that works with multiple types while maintaining type safety.</p>
<h2>Conditional Types</h2>
<p>Conditional types enable you to create types that depend on a condition, making your type definitions more flexible and expressive.</p>
<h2>Mapped Types</h2>
<p>Mapped types allow you to create new types by transforming properties of existing types, providing powerful ways to manipulate type definitions.</p>
<h2>Template Literal Types</h2>
<p>Template literal types combine the power of template literals with TypeScript's type system, enabling sophisticated string manipulation at the type level.</p>
<h2>Utility Types</h2>
<p>TypeScript provides many built-in utility types that help you transform and manipulate types in common ways, making your code more concise and readable.</p>
</div>`

	webAppsContent = `<div class="prose prose-lg max-w-none">
<p>Modern web development has evolved significantly over the past few years. Today's web applications are more sophisticated, performant, and user-friendly than ever before.</p>
<h2>The Modern Web Stack</h2>
<p>Today's web applications typically use a combination of modern frameworks, build tools, and deployment strategies to deliver exceptional user experiences.</p>
<h2>Frontend Frameworks</h2>
<p>React, Vue, and Angular continue to dominate the frontend landscape, each offering unique advantages for different types of applications.</p>
<h2>State Management</h2>
<p>Managing application state effectively is crucial for building scalable web applications. Modern solutions include Redux, Zustand, and built-in framework state management.</p>
<h2>Performance Optimization</h2>
<p>Performance is key to user satisfaction. Learn about code splitting, lazy loading, and other optimization techniques.</p>
<h2>Deployment and DevOps</h2>
<p>Modern deployment strategies using CI/CD pipelines, containerization, and cloud platforms ensure reliable and scalable applications.</p>
</div>`

	cssGridContent = `<div class="prose prose-lg max-w-none">
<p>CSS Grid Layout is a powerful two-dimensional layout system that has revolutionized how we create web layouts. This guide will take you from beginner to advanced Grid techniques.</p>
<h2>Grid Basics</h2>
<p>Understanding the fundamental concepts of CSS Grid, including grid containers, grid items, and the grid coordinate system.</p>
<h2>Grid Template Areas</h2>
<p>Learn how to create complex layouts using named grid areas, making your CSS more readable and maintainable.</p>
<h2>Responsive Grid Layouts</h2>
<p>Discover how to create responsive layouts that adapt to different screen sizes using Grid's powerful features.</p>
<h2>Grid vs Flexbox</h2>
<p>Understand when to use Grid versus Flexbox, and how they can work together to create sophisticated layouts.</p>
<h2>Advanced Grid Techniques</h2>
<p>Explore advanced Grid features like subgrid, implicit grids, and complex alignment options.</p>
</div>`
)
